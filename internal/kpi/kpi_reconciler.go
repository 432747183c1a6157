package kpi

import (
	"context"
	"errors"
	"time"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/meeting"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// editProtectionWindow: baris yang baru saja diedit manual tidak boleh
// ditimpa oleh recalc yang jalan bersamaan.
const editProtectionWindow = 10 * time.Second

//go:generate mockgen -source=kpi_reconciler.go -destination=mock/kpi_reconciler_mock.go -package=mock
type Reconciler interface {
	Reconcile(ctx context.Context, rep salesrep.SalesRep, month period.Month, collected meeting.Metrics) (*MonthlyKPI, error)
}

type reconciler struct {
	repo      Repository
	collector meeting.Collector
	now       func() time.Time
	logger    *zap.Logger
}

func NewReconciler(repo Repository, collector meeting.Collector) Reconciler {
	return &reconciler{
		repo:      repo,
		collector: collector,
		now:       time.Now,
		logger:    zap.L().Named("kpi.reconciler"),
	}
}

func (r *reconciler) Reconcile(ctx context.Context, rep salesrep.SalesRep, month period.Month, collected meeting.Metrics) (*MonthlyKPI, error) {
	row, err := r.repo.FindByRepMonth(ctx, rep.ID.String(), month.AnoMes)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		row = &MonthlyKPI{
			SDRID:                  rep.ID,
			AnoMes:                 month.AnoMes,
			Agendadas:              collected.Agendadas,
			Realizadas:             collected.Realizadas,
			NoShows:                collected.NoShows,
			NoShowRate:             collected.NoShowRate,
			IntermediacoesContrato: collected.Contratos,
		}
		if err := r.repo.Create(ctx, row); err != nil {
			return nil, err
		}
		return row, nil
	}

	edited := r.now().Sub(row.UpdatedAt) < editProtectionWindow
	if edited {
		r.logger.Info("kpi row inside edit window, keeping manual values",
			zap.String("sdr_id", rep.ID.String()),
			zap.String("ano_mes", month.AnoMes),
		)
	}

	// Recalc dari bulan tanpa satupun slot terjadwal dianggap data belum
	// tersinkron, jangan menghapus angka yang sudah ada.
	if !edited && collected.Agendadas > 0 {
		row.Agendadas = collected.Agendadas
		row.Realizadas = collected.Realizadas
		row.NoShows = collected.NoShows
		row.NoShowRate = collected.NoShowRate
	}

	// Save selalu jalan supaya updated_at ikut naik, walau field metrik
	// tidak berubah.
	if err := r.repo.Update(ctx, row); err != nil {
		return nil, err
	}

	if err := r.reconcileContracts(ctx, rep, month, row); err != nil {
		return nil, err
	}

	return row, nil
}

// reconcileContracts membandingkan hitungan kontrak live dengan kolom
// intermediacoes_contrato. Jalur ini sengaja di luar edit-protection window:
// kontrak berasal dari data pembayaran, bukan edit manual.
func (r *reconciler) reconcileContracts(ctx context.Context, rep salesrep.SalesRep, month period.Month, row *MonthlyKPI) error {
	live, err := r.collector.CountIntermediated(ctx, rep, month)
	if err != nil {
		return err
	}
	if live == row.IntermediacoesContrato {
		return nil
	}

	r.logger.Info("contract count drifted, reconciling",
		zap.String("sdr_id", rep.ID.String()),
		zap.String("ano_mes", month.AnoMes),
		zap.Int("stored", row.IntermediacoesContrato),
		zap.Int("live", live),
	)

	if err := r.repo.UpdateContracts(ctx, row.ID.String(), live); err != nil {
		return err
	}
	row.IntermediacoesContrato = live
	return nil
}
