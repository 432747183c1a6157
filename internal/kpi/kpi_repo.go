package kpi

import (
	"context"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/squad"

	"gorm.io/gorm"
)

//go:generate mockgen -source=kpi_repo.go -destination=mock/kpi_repo_mock.go -package=mock
type Repository interface {
	FindByRepMonth(ctx context.Context, sdrID, anoMes string) (*MonthlyKPI, error)
	FindByID(ctx context.Context, id string) (*MonthlyKPI, error)
	FindByMonth(ctx context.Context, anoMes string) ([]MonthlyKPI, error)
	Create(ctx context.Context, row *MonthlyKPI) error
	Update(ctx context.Context, row *MonthlyKPI) error
	UpdateContracts(ctx context.Context, id string, count int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByRepMonth(ctx context.Context, sdrID, anoMes string) (*MonthlyKPI, error) {
	var row MonthlyKPI
	err := r.db.WithContext(ctx).
		Where("sdr_id = ?", sdrID).
		Where("ano_mes = ?", anoMes).
		First(&row).Error
	return &row, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MonthlyKPI, error) {
	var row MonthlyKPI
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) FindByMonth(ctx context.Context, anoMes string) ([]MonthlyKPI, error) {
	var rows []MonthlyKPI
	err := r.db.WithContext(ctx).
		Scopes(squad.MonthScope(anoMes)).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, row *MonthlyKPI) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *MonthlyKPI) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// UpdateContracts menulis intermediacoes_contrato tanpa menyentuh field lain.
func (r *repository) UpdateContracts(ctx context.Context, id string, count int) error {
	return r.db.WithContext(ctx).
		Model(&MonthlyKPI{}).
		Where("id = ?", id).
		Update("intermediacoes_contrato", count).Error
}
