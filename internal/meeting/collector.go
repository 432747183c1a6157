package meeting

import (
	"context"
	"errors"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=collector.go -destination=mock/collector_mock.go -package=mock
type Collector interface {
	Collect(ctx context.Context, rep salesrep.SalesRep, month period.Month) (Metrics, error)

	// CountIntermediated adalah live count untuk rekonsiliasi
	// intermediacoes_contrato, independen dari edit-protection window.
	CountIntermediated(ctx context.Context, rep salesrep.SalesRep, month period.Month) (int, error)
}

// collector memilih strategi per role: SDR lewat rutin agregasi by email,
// closer lewat slot + participantes. Rep tanpa email menghasilkan metrik nol
// (warning, bukan error).
type collector struct {
	sdr    sdrCollector
	closer closerCollector
	logger *zap.Logger
}

func NewCollector(repo Repository) Collector {
	logger := zap.L().Named("meeting.collector")
	return &collector{
		sdr:    sdrCollector{repo: repo, logger: logger},
		closer: closerCollector{repo: repo, logger: logger},
		logger: logger,
	}
}

func (c *collector) Collect(ctx context.Context, rep salesrep.SalesRep, month period.Month) (Metrics, error) {
	if rep.Email == nil || *rep.Email == "" {
		c.logger.Warn("rep has no email, using zero metrics",
			zap.String("sdr_id", rep.ID.String()),
			zap.String("ano_mes", month.AnoMes),
		)
		return Metrics{}, nil
	}

	if rep.IsCloser() {
		return c.closer.collect(ctx, *rep.Email, month)
	}
	return c.sdr.collect(ctx, *rep.Email, month)
}

func (c *collector) CountIntermediated(ctx context.Context, rep salesrep.SalesRep, month period.Month) (int, error) {
	if !rep.IsCloser() || rep.Email == nil {
		return 0, nil
	}
	return c.closer.countContracts(ctx, *rep.Email, month)
}

type sdrCollector struct {
	repo   Repository
	logger *zap.Logger
}

func (c sdrCollector) collect(ctx context.Context, email string, month period.Month) (Metrics, error) {
	booked, completed, err := c.repo.AggregateSDRMonth(ctx, email, month.Start, month.End)
	if err != nil {
		return Metrics{}, err
	}

	// No-show SDR adalah definisi rekonsiliasi (booked - completed),
	// bukan hitungan independen.
	noShows := booked - completed
	if noShows < 0 {
		noShows = 0
	}

	m := Metrics{
		Agendadas:  booked,
		Realizadas: completed,
		NoShows:    noShows,
	}
	if booked > 0 {
		m.NoShowRate = float64(noShows) / float64(booked) * 100
	}
	return m, nil
}

type closerCollector struct {
	repo   Repository
	logger *zap.Logger
}

func (c closerCollector) collect(ctx context.Context, email string, month period.Month) (Metrics, error) {
	closer, err := c.repo.FindCloserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Warn("closer record not found, using zero metrics",
				zap.String("email", email),
				zap.String("ano_mes", month.AnoMes),
			)
			return Metrics{}, nil
		}
		return Metrics{}, err
	}
	closerID := closer.ID.String()

	scheduled, err := c.repo.CountSlotsByCloser(ctx, closerID, month.Start, month.End)
	if err != nil {
		return Metrics{}, err
	}

	completed, err := c.repo.CountAttendeesByStatus(ctx, closerID, month.Start, month.End,
		[]string{StatusCompleted, StatusContractPaid, StatusRefunded})
	if err != nil {
		return Metrics{}, err
	}

	noShows, err := c.repo.CountAttendeesByStatus(ctx, closerID, month.Start, month.End,
		[]string{StatusNoShow})
	if err != nil {
		return Metrics{}, err
	}

	contracts, err := c.contractsFor(ctx, closerID, month)
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{
		Agendadas:  scheduled,
		Realizadas: completed,
		NoShows:    noShows,
		Contratos:  contracts,
	}
	if scheduled > 0 {
		m.NoShowRate = float64(noShows) / float64(scheduled) * 100
	}
	return m, nil
}

func (c closerCollector) countContracts(ctx context.Context, email string, month period.Month) (int, error) {
	closer, err := c.repo.FindCloserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return c.contractsFor(ctx, closer.ID.String(), month)
}

// contractsFor menjumlahkan dua jalur: contract_paid_at di bulan (baru) + baris
// legacy tanpa timestamp yang slot-nya jatuh di bulan. Aditif, dipisah hanya
// oleh null-vs-not-null contract_paid_at.
func (c closerCollector) contractsFor(ctx context.Context, closerID string, month period.Month) (int, error) {
	paid, err := c.repo.CountContractsPaidInMonth(ctx, closerID, month.Start, month.End)
	if err != nil {
		return 0, err
	}

	legacy, err := c.repo.CountLegacyContracts(ctx, closerID, month.Start, month.End)
	if err != nil {
		return 0, err
	}

	return paid + legacy, nil
}
