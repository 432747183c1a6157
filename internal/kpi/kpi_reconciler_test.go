package kpi_test

import (
	"context"
	"testing"
	"time"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi/mock"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/meeting"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/period"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeCollector struct {
	metrics      meeting.Metrics
	contracts    int
	contractsErr error
}

func (f *fakeCollector) Collect(_ context.Context, _ salesrep.SalesRep, _ period.Month) (meeting.Metrics, error) {
	return f.metrics, nil
}

func (f *fakeCollector) CountIntermediated(_ context.Context, _ salesrep.SalesRep, _ period.Month) (int, error) {
	return f.contracts, f.contractsErr
}

func testRep() salesrep.SalesRep {
	email := "ana@mcf.com.br"
	return salesrep.SalesRep{
		ID:    uuid.New(),
		Name:  "Ana",
		Email: &email,
		Role:  salesrep.RoleSDR,
		Squad: "incorporador",
	}
}

func testMonth(t *testing.T) period.Month {
	t.Helper()
	m, err := period.Parse("2025-06")
	assert.NoError(t, err)
	return m
}

func TestReconcile_CreatesRowWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rep := testRep()
	month := testMonth(t)

	collected := meeting.Metrics{Agendadas: 40, Realizadas: 35, NoShows: 5, NoShowRate: 12.5}

	repo.EXPECT().
		FindByRepMonth(gomock.Any(), rep.ID.String(), "2025-06").
		Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *kpi.MonthlyKPI) error {
			row.ID = uuid.New()
			return nil
		})

	r := kpi.NewReconciler(repo, &fakeCollector{})
	row, err := r.Reconcile(context.Background(), rep, month, collected)

	assert.NoError(t, err)
	assert.Equal(t, 40, row.Agendadas)
	assert.Equal(t, 35, row.Realizadas)
	assert.Equal(t, 5, row.NoShows)
	assert.InDelta(t, 12.5, row.NoShowRate, 0.001)
	assert.Equal(t, "2025-06", row.AnoMes)
}

func TestReconcile_EditWindowPreservesManualValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rep := testRep()
	month := testMonth(t)

	existing := &kpi.MonthlyKPI{
		ID:         uuid.New(),
		SDRID:      rep.ID,
		AnoMes:     "2025-06",
		Agendadas:  99,
		Realizadas: 90,
		NoShows:    9,
		UpdatedAt:  time.Now(),
	}
	collected := meeting.Metrics{Agendadas: 40, Realizadas: 35, NoShows: 5}

	repo.EXPECT().
		FindByRepMonth(gomock.Any(), rep.ID.String(), "2025-06").
		Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	r := kpi.NewReconciler(repo, &fakeCollector{})
	row, err := r.Reconcile(context.Background(), rep, month, collected)

	assert.NoError(t, err)
	assert.Equal(t, 99, row.Agendadas)
	assert.Equal(t, 90, row.Realizadas)
	assert.Equal(t, 9, row.NoShows)
}

func TestReconcile_OverwritesOutsideEditWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rep := testRep()
	month := testMonth(t)

	existing := &kpi.MonthlyKPI{
		ID:        uuid.New(),
		SDRID:     rep.ID,
		AnoMes:    "2025-06",
		Agendadas: 99,
		UpdatedAt: time.Now().Add(-time.Minute),
	}
	collected := meeting.Metrics{Agendadas: 40, Realizadas: 35, NoShows: 5, NoShowRate: 12.5}

	repo.EXPECT().
		FindByRepMonth(gomock.Any(), rep.ID.String(), "2025-06").
		Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	r := kpi.NewReconciler(repo, &fakeCollector{})
	row, err := r.Reconcile(context.Background(), rep, month, collected)

	assert.NoError(t, err)
	assert.Equal(t, 40, row.Agendadas)
	assert.Equal(t, 35, row.Realizadas)
	assert.Equal(t, 5, row.NoShows)
}

func TestReconcile_ZeroScheduledKeepsExistingNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rep := testRep()
	month := testMonth(t)

	existing := &kpi.MonthlyKPI{
		ID:         uuid.New(),
		SDRID:      rep.ID,
		AnoMes:     "2025-06",
		Agendadas:  40,
		Realizadas: 35,
		UpdatedAt:  time.Now().Add(-time.Hour),
	}

	repo.EXPECT().
		FindByRepMonth(gomock.Any(), rep.ID.String(), "2025-06").
		Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	r := kpi.NewReconciler(repo, &fakeCollector{})
	row, err := r.Reconcile(context.Background(), rep, month, meeting.Metrics{})

	assert.NoError(t, err)
	assert.Equal(t, 40, row.Agendadas)
	assert.Equal(t, 35, row.Realizadas)
}

func TestReconcile_ContractDriftTriggersSingleColumnUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rep := testRep()
	rep.Role = salesrep.RoleCloser
	month := testMonth(t)

	existing := &kpi.MonthlyKPI{
		ID:                     uuid.New(),
		SDRID:                  rep.ID,
		AnoMes:                 "2025-06",
		IntermediacoesContrato: 2,
		UpdatedAt:              time.Now(),
	}

	repo.EXPECT().
		FindByRepMonth(gomock.Any(), rep.ID.String(), "2025-06").
		Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)
	repo.EXPECT().UpdateContracts(gomock.Any(), existing.ID.String(), 5).Return(nil)

	r := kpi.NewReconciler(repo, &fakeCollector{contracts: 5})
	row, err := r.Reconcile(context.Background(), rep, month, meeting.Metrics{})

	assert.NoError(t, err)
	assert.Equal(t, 5, row.IntermediacoesContrato)
}
