package compplan

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=plan_repo.go -destination=mock/plan_repo_mock.go -package=mock
type Repository interface {
	FindCurrentPlan(ctx context.Context, sdrID string, monthStart time.Time) (*CompensationPlan, error)
	Create(ctx context.Context, plan *CompensationPlan) error
	FindJobCatalog(ctx context.Context, id string) (*JobCatalog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindCurrentPlan: vigencia_inicio <= awal bulan dan (vigencia_fim null atau
// >= awal bulan); start terbaru menang.
func (r *repository) FindCurrentPlan(ctx context.Context, sdrID string, monthStart time.Time) (*CompensationPlan, error) {
	var plan CompensationPlan
	err := r.db.WithContext(ctx).
		Where("sdr_id = ?", sdrID).
		Where("vigencia_inicio <= ?", monthStart).
		Where("vigencia_fim IS NULL OR vigencia_fim >= ?", monthStart).
		Order("vigencia_inicio DESC").
		First(&plan).Error
	return &plan, err
}

func (r *repository) Create(ctx context.Context, plan *CompensationPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *repository) FindJobCatalog(ctx context.Context, id string) (*JobCatalog, error) {
	var catalog JobCatalog
	err := r.db.WithContext(ctx).First(&catalog, "id = ?", id).Error
	return &catalog, err
}
