package payout

import (
	"context"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/squad"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payout_repo.go -destination=mock/payout_repo_mock.go -package=mock
type Repository interface {
	FindByRepMonth(ctx context.Context, sdrID, anoMes string) (*MonthlyPayout, error)
	FindByID(ctx context.Context, id string) (*MonthlyPayout, error)
	FindByMonth(ctx context.Context, anoMes string) ([]MonthlyPayout, error)
	Upsert(ctx context.Context, row *MonthlyPayout) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByRepMonth(ctx context.Context, sdrID, anoMes string) (*MonthlyPayout, error) {
	var row MonthlyPayout
	err := r.db.WithContext(ctx).
		Where("sdr_id = ?", sdrID).
		Where("ano_mes = ?", anoMes).
		First(&row).Error
	return &row, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MonthlyPayout, error) {
	var row MonthlyPayout
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) FindByMonth(ctx context.Context, anoMes string) ([]MonthlyPayout, error) {
	var rows []MonthlyPayout
	err := r.db.WithContext(ctx).
		Scopes(squad.MonthScope(anoMes)).
		Order("performance_total DESC").
		Find(&rows).Error
	return rows, err
}

// Upsert menulis pada unique key (sdr_id, ano_mes). created_at baris lama
// tidak disentuh.
func (r *repository) Upsert(ctx context.Context, row *MonthlyPayout) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sdr_id"}, {Name: "ano_mes"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"agendamento_pct", "agendamento_mult", "agendamento_valor",
				"realizada_pct", "realizada_mult", "realizada_valor",
				"tentativas_pct", "tentativas_mult", "tentativas_valor",
				"organizacao_pct", "organizacao_mult", "organizacao_valor",
				"contratos_pct", "contratos_mult", "contratos_valor",
				"vendas_parceria_pct", "vendas_parceria_mult", "vendas_parceria_valor",
				"no_show_rate", "no_show_performance", "performance_total",
				"fixo_valor", "variavel_total", "total",
				"vr_base", "vr_ultrameta", "vr_total",
				"ultrameta_autorizado", "status", "updated_at",
			}),
		}).
		Create(row).Error
}
