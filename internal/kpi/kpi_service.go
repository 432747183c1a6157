package kpi

import (
	"context"
	"errors"

	kpierrors "github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi/errors"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	GetByMonth(ctx context.Context, anoMes string) ([]MonthlyKPIResponse, error)
	ManualEdit(ctx context.Context, id string, req ManualEditRequest) (MonthlyKPIResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByMonth(ctx context.Context, anoMes string) ([]MonthlyKPIResponse, error) {
	if _, err := period.Parse(anoMes); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByMonth(ctx, anoMes)
	if err != nil {
		return nil, err
	}

	res := make([]MonthlyKPIResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

// ManualEdit menimpa field yang dikirim saja. Save membuat updated_at naik,
// sehingga baris ini terlindung dari recalc selama edit-protection window.
func (s *service) ManualEdit(ctx context.Context, id string, req ManualEditRequest) (MonthlyKPIResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MonthlyKPIResponse{}, kpierrors.ErrInvalidKPIID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlyKPIResponse{}, kpierrors.ErrKPINotFound
		}
		return MonthlyKPIResponse{}, err
	}

	if req.Agendadas != nil {
		row.Agendadas = *req.Agendadas
	}
	if req.Realizadas != nil {
		row.Realizadas = *req.Realizadas
	}
	if req.NoShows != nil {
		row.NoShows = *req.NoShows
	}
	if req.Tentativas != nil {
		row.Tentativas = *req.Tentativas
	}
	if req.Organizacao != nil {
		row.Organizacao = *req.Organizacao
	}

	if row.Agendadas > 0 {
		row.NoShowRate = float64(row.NoShows) / float64(row.Agendadas) * 100
	} else {
		row.NoShowRate = 0
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return MonthlyKPIResponse{}, err
	}
	return mapToResponse(*row), nil
}
