package consumer

import (
	"context"
	"encoding/json"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/events"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/payout"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRecalcRequested menjalankan engine untuk setiap event recalc yang
// masuk. Error recalculation tidak meng-commit offset supaya event dicoba lagi.
func ConsumeRecalcRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payoutService payout.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payout_recalc")
	log.Info("payout recalc consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payout recalc consumer stopped")
				return
			}
			log.Error("fetch payout recalc message failed", zap.Error(err))
			continue
		}

		var event events.PayoutRecalcRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payout recalc event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		summary, err := payoutService.Recalculate(ctx, payout.RecalculateRequest{
			SDRID:  event.SDRID,
			AnoMes: event.AnoMes,
		})
		if err != nil {
			log.Error("recalculation from event failed",
				zap.String("ano_mes", event.AnoMes),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payout recalc message failed", zap.Error(err))
			continue
		}

		log.Info("recalculation from event finished",
			zap.String("ano_mes", event.AnoMes),
			zap.Int("processed", summary.Processed),
			zap.Int("errors", summary.Errors),
		)
	}
}
