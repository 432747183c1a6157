package metricweight

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=weight_repo.go -destination=mock/weight_repo_mock.go -package=mock
type Repository interface {
	FindActive(ctx context.Context, anoMes, cargoCatalogID string, squad *string) ([]MetricWeight, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActive: squad=nil mengambil baris generik (squad IS NULL).
func (r *repository) FindActive(ctx context.Context, anoMes, cargoCatalogID string, squad *string) ([]MetricWeight, error) {
	q := r.db.WithContext(ctx).
		Where("ano_mes = ?", anoMes).
		Where("cargo_catalogo_id = ?", cargoCatalogID).
		Where("ativo = ?", true)

	if squad == nil {
		q = q.Where("squad IS NULL")
	} else {
		q = q.Where("squad = ?", *squad)
	}

	var weights []MetricWeight
	err := q.Find(&weights).Error
	return weights, err
}
