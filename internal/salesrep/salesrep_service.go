package salesrep

import (
	"context"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/response"
)

//go:generate mockgen -source=salesrep_service.go -destination=mock/salesrep_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, squadFilter *string, page, limit int) ([]SalesRepResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (SalesRepResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, squadFilter *string, page, limit int) ([]SalesRepResponse, response.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	reps, total, err := s.repo.FindAll(ctx, squadFilter, page, limit)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	res := make([]SalesRepResponse, len(reps))
	for i, rep := range reps {
		res[i] = mapToResponse(rep)
	}
	return res, response.NewPaginationMeta(total, page, limit), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalesRepResponse, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalesRepResponse{}, err
	}
	return mapToResponse(*rep), nil
}

func mapToResponse(rep SalesRep) SalesRepResponse {
	resp := SalesRepResponse{
		ID:         rep.ID.String(),
		Name:       rep.Name,
		Email:      rep.Email,
		Role:       rep.Role,
		MetaDiaria: rep.MetaDiaria,
		Squad:      rep.Squad,
		Active:     rep.Active,
		Nivel:      rep.Nivel,
	}
	if rep.HireDate != nil {
		v := rep.HireDate.Format("2006-01-02")
		resp.HireDate = &v
	}
	return resp
}
