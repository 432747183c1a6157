package calendar

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=calendar_repo.go -destination=mock/calendar_repo_mock.go -package=mock
type Repository interface {
	FindByMonth(ctx context.Context, anoMes string) (*MonthCalendar, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByMonth(ctx context.Context, anoMes string) (*MonthCalendar, error) {
	var cal MonthCalendar
	err := r.db.WithContext(ctx).First(&cal, "ano_mes = ?", anoMes).Error
	return &cal, err
}
