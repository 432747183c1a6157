package goal

import (
	"context"
	"errors"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RepScore adalah hasil agregat satu rep setelah loop recalculation.
type RepScore struct {
	SDRID       uuid.UUID
	Role        string
	Squad       string
	Performance float64
}

//go:generate mockgen -source=winner_tracker.go -destination=mock/winner_tracker_mock.go -package=mock
type WinnerTracker interface {
	Track(ctx context.Context, goals map[string]TeamMonthlyGoal, divinaHit map[string]bool, scores []RepScore) error
}

type winnerTracker struct {
	repo   Repository
	logger *zap.Logger
}

func NewWinnerTracker(repo Repository) WinnerTracker {
	return &winnerTracker{
		repo:   repo,
		logger: zap.L().Named("goal.winner_tracker"),
	}
}

// Track berjalan sekali setelah loop per-rep, hanya untuk squad yang revenue-nya
// mencapai threshold divina. Top performer SDR dan closer dipilih terpisah.
// Seri dipecahkan oleh urutan iterasi (pemenang pertama dengan skor maksimum).
func (t *winnerTracker) Track(
	ctx context.Context,
	goals map[string]TeamMonthlyGoal,
	divinaHit map[string]bool,
	scores []RepScore,
) error {
	for squadName, g := range goals {
		if !divinaHit[squadName] {
			continue
		}

		best := map[string]*RepScore{}
		for i := range scores {
			sc := &scores[i]
			if sc.Squad != squadName {
				continue
			}
			cur, ok := best[sc.Role]
			if !ok || sc.Performance > cur.Performance {
				best[sc.Role] = sc
			}
		}

		if err := t.upsert(ctx, g, PrizeDivinaSDR, best[salesrep.RoleSDR]); err != nil {
			return err
		}
		if err := t.upsert(ctx, g, PrizeDivinaCloser, best[salesrep.RoleCloser]); err != nil {
			return err
		}
	}

	return nil
}

func (t *winnerTracker) upsert(ctx context.Context, g TeamMonthlyGoal, prizeType string, winner *RepScore) error {
	if winner == nil {
		return nil
	}

	existing, err := t.repo.FindWinner(ctx, g.ID.String(), prizeType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		t.logger.Info("registering goal winner",
			zap.String("squad", g.Squad),
			zap.String("prize", prizeType),
			zap.String("sdr_id", winner.SDRID.String()),
			zap.Float64("performance", winner.Performance),
		)
		return t.repo.CreateWinner(ctx, &TeamGoalWinner{
			ID:         uuid.New(),
			GoalID:     g.ID,
			PrizeType:  prizeType,
			SDRID:      winner.SDRID,
			Autorizado: false,
		})
	}

	if existing.SDRID == winner.SDRID {
		return nil
	}

	t.logger.Info("updating goal winner",
		zap.String("squad", g.Squad),
		zap.String("prize", prizeType),
		zap.String("sdr_id", winner.SDRID.String()),
	)
	return t.repo.UpdateWinnerRep(ctx, existing.ID.String(), winner.SDRID.String())
}
