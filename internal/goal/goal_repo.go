package goal

import (
	"context"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/squad"

	"gorm.io/gorm"
)

//go:generate mockgen -source=goal_repo.go -destination=mock/goal_repo_mock.go -package=mock
type Repository interface {
	FindActiveByMonth(ctx context.Context, anoMes string) ([]TeamMonthlyGoal, error)
	FindWinner(ctx context.Context, goalID string, prizeType string) (*TeamGoalWinner, error)
	CreateWinner(ctx context.Context, w *TeamGoalWinner) error
	UpdateWinnerRep(ctx context.Context, id string, sdrID string) error
	FindWinnersByMonth(ctx context.Context, anoMes string) ([]TeamGoalWinner, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveByMonth(ctx context.Context, anoMes string) ([]TeamMonthlyGoal, error) {
	var goals []TeamMonthlyGoal
	err := r.db.WithContext(ctx).
		Scopes(squad.MonthScope(anoMes)).
		Where("ativo = ?", true).
		Find(&goals).Error
	return goals, err
}

func (r *repository) FindWinner(ctx context.Context, goalID string, prizeType string) (*TeamGoalWinner, error) {
	var w TeamGoalWinner
	err := r.db.WithContext(ctx).
		Where("meta_id = ?", goalID).
		Where("tipo_premio = ?", prizeType).
		First(&w).Error
	return &w, err
}

func (r *repository) CreateWinner(ctx context.Context, w *TeamGoalWinner) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// UpdateWinnerRep hanya mengganti referensi rep pemenang; autorizado yang
// sudah di-set manual tetap utuh.
func (r *repository) UpdateWinnerRep(ctx context.Context, id string, sdrID string) error {
	return r.db.WithContext(ctx).
		Model(&TeamGoalWinner{}).
		Where("id = ?", id).
		Update("sdr_id", sdrID).Error
}

func (r *repository) FindWinnersByMonth(ctx context.Context, anoMes string) ([]TeamGoalWinner, error) {
	var winners []TeamGoalWinner
	err := r.db.WithContext(ctx).
		Joins("JOIN metas_time_mensal ON metas_time_mensal.id = metas_time_vencedores.meta_id").
		Where("metas_time_mensal.ano_mes = ?", anoMes).
		Find(&winners).Error
	return winners, err
}
