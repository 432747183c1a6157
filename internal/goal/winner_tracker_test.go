package goal_test

import (
	"context"
	"testing"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/goal"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeWinnerRepo struct {
	winners map[string]*goal.TeamGoalWinner // keyed goalID:prizeType
	updated map[string]string               // winner id -> new sdr id
}

func newFakeWinnerRepo() *fakeWinnerRepo {
	return &fakeWinnerRepo{
		winners: map[string]*goal.TeamGoalWinner{},
		updated: map[string]string{},
	}
}

func (f *fakeWinnerRepo) FindActiveByMonth(ctx context.Context, anoMes string) ([]goal.TeamMonthlyGoal, error) {
	return nil, nil
}

func (f *fakeWinnerRepo) FindWinner(ctx context.Context, goalID, prizeType string) (*goal.TeamGoalWinner, error) {
	if w, ok := f.winners[goalID+":"+prizeType]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWinnerRepo) CreateWinner(ctx context.Context, w *goal.TeamGoalWinner) error {
	f.winners[w.GoalID.String()+":"+w.PrizeType] = w
	return nil
}

func (f *fakeWinnerRepo) UpdateWinnerRep(ctx context.Context, id, sdrID string) error {
	f.updated[id] = sdrID
	return nil
}

func (f *fakeWinnerRepo) FindWinnersByMonth(ctx context.Context, anoMes string) ([]goal.TeamGoalWinner, error) {
	return nil, nil
}

func TestTrack_SelectsBestPerRoleOnDivinaHit(t *testing.T) {
	repo := newFakeWinnerRepo()
	tracker := goal.NewWinnerTracker(repo)

	g := goal.TeamMonthlyGoal{ID: uuid.New(), Squad: "incorporador"}
	bestSDR := uuid.New()
	bestCloser := uuid.New()

	scores := []goal.RepScore{
		{SDRID: uuid.New(), Role: salesrep.RoleSDR, Squad: "incorporador", Performance: 80},
		{SDRID: bestSDR, Role: salesrep.RoleSDR, Squad: "incorporador", Performance: 110},
		{SDRID: bestCloser, Role: salesrep.RoleCloser, Squad: "incorporador", Performance: 95},
		// Squad lain tidak ikut bersaing.
		{SDRID: uuid.New(), Role: salesrep.RoleSDR, Squad: "consorcio", Performance: 200},
	}

	err := tracker.Track(
		context.Background(),
		map[string]goal.TeamMonthlyGoal{"incorporador": g},
		map[string]bool{"incorporador": true},
		scores,
	)

	assert.NoError(t, err)

	sdrWinner := repo.winners[g.ID.String()+":"+goal.PrizeDivinaSDR]
	assert.NotNil(t, sdrWinner)
	assert.Equal(t, bestSDR, sdrWinner.SDRID)
	assert.False(t, sdrWinner.Autorizado)

	closerWinner := repo.winners[g.ID.String()+":"+goal.PrizeDivinaCloser]
	assert.NotNil(t, closerWinner)
	assert.Equal(t, bestCloser, closerWinner.SDRID)
}

func TestTrack_NoWriteWithoutDivinaHit(t *testing.T) {
	repo := newFakeWinnerRepo()
	tracker := goal.NewWinnerTracker(repo)
	g := goal.TeamMonthlyGoal{ID: uuid.New(), Squad: "incorporador"}

	err := tracker.Track(
		context.Background(),
		map[string]goal.TeamMonthlyGoal{"incorporador": g},
		map[string]bool{"incorporador": false},
		[]goal.RepScore{{SDRID: uuid.New(), Role: salesrep.RoleSDR, Squad: "incorporador", Performance: 150}},
	)

	assert.NoError(t, err)
	assert.Empty(t, repo.winners)
}

func TestTrack_TieKeepsFirstEncountered(t *testing.T) {
	repo := newFakeWinnerRepo()
	tracker := goal.NewWinnerTracker(repo)
	g := goal.TeamMonthlyGoal{ID: uuid.New(), Squad: "incorporador"}

	first := uuid.New()
	scores := []goal.RepScore{
		{SDRID: first, Role: salesrep.RoleSDR, Squad: "incorporador", Performance: 100},
		{SDRID: uuid.New(), Role: salesrep.RoleSDR, Squad: "incorporador", Performance: 100},
	}

	err := tracker.Track(
		context.Background(),
		map[string]goal.TeamMonthlyGoal{"incorporador": g},
		map[string]bool{"incorporador": true},
		scores,
	)

	assert.NoError(t, err)
	assert.Equal(t, first, repo.winners[g.ID.String()+":"+goal.PrizeDivinaSDR].SDRID)
}

func TestTrack_UpdatePreservesAuthorization(t *testing.T) {
	repo := newFakeWinnerRepo()
	tracker := goal.NewWinnerTracker(repo)
	g := goal.TeamMonthlyGoal{ID: uuid.New(), Squad: "incorporador"}

	existing := &goal.TeamGoalWinner{
		ID:         uuid.New(),
		GoalID:     g.ID,
		PrizeType:  goal.PrizeDivinaSDR,
		SDRID:      uuid.New(),
		Autorizado: true,
	}
	repo.winners[g.ID.String()+":"+goal.PrizeDivinaSDR] = existing

	newWinner := uuid.New()
	err := tracker.Track(
		context.Background(),
		map[string]goal.TeamMonthlyGoal{"incorporador": g},
		map[string]bool{"incorporador": true},
		[]goal.RepScore{{SDRID: newWinner, Role: salesrep.RoleSDR, Squad: "incorporador", Performance: 120}},
	)

	assert.NoError(t, err)
	// Hanya referensi rep yang di-update; baris (dan flag autorizado) tetap.
	assert.Equal(t, newWinner.String(), repo.updated[existing.ID.String()])
	assert.True(t, existing.Autorizado)
}
