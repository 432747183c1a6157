package salesrep

import (
	"context"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/squad"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salesrep_repo.go -destination=mock/salesrep_repo_mock.go -package=mock
type Repository interface {
	FindActive(ctx context.Context, sdrID *string) ([]SalesRep, error)
	FindByID(ctx context.Context, id string) (*SalesRep, error)
	FindAll(ctx context.Context, squadFilter *string, page, limit int) ([]SalesRep, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActive(ctx context.Context, sdrID *string) ([]SalesRep, error) {
	var reps []SalesRep

	q := r.db.WithContext(ctx).Where("ativo = ?", true)
	if sdrID != nil && *sdrID != "" {
		q = q.Where("id = ?", *sdrID)
	}

	err := q.Order("nome ASC").Find(&reps).Error
	return reps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalesRep, error) {
	var rep SalesRep
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) FindAll(ctx context.Context, squadFilter *string, page, limit int) ([]SalesRep, int64, error) {
	var reps []SalesRep
	var total int64

	q := r.db.WithContext(ctx).Model(&SalesRep{})
	if squadFilter != nil && *squadFilter != "" {
		q = q.Scopes(squad.Scope(*squadFilter))
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("nome ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reps).Error
	return reps, total, err
}
