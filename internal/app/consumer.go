package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/calendar"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/compplan"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/events"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/goal"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/meeting"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/messaging/kafka"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/messaging/kafka/consumer"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/metricweight"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/payout"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/revenue"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	collector := meeting.NewCollector(meeting.NewRepository(gormDB))
	kpiRepo := kpi.NewRepository(gormDB)
	payoutService := payout.NewService(payout.ServiceDeps{
		RepRepo:        salesrep.NewRepository(gormDB),
		CalendarRepo:   calendar.NewRepository(gormDB),
		GoalRepo:       goal.NewRepository(gormDB),
		RevenueService: revenue.NewService(revenue.NewRepository(gormDB)),
		Collector:      collector,
		PlanResolver:   compplan.NewResolver(compplan.NewRepository(gormDB)),
		WeightResolver: metricweight.NewResolver(metricweight.NewRepository(gormDB)),
		Reconciler:     kpi.NewReconciler(kpiRepo, collector),
		PayoutRepo:     payout.NewRepository(gormDB),
		WinnerTracker:  goal.NewWinnerTracker(goal.NewRepository(gormDB)),
		Outbox:         kafka.NewOutboxRepository(sqlDB),
	})

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayoutRecalcRequestedTopic,
		GroupID:        "mcf-insight-payout-recalc",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRecalcRequested(ctx, reader, payoutService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
