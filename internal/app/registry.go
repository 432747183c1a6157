package app

import (
	"database/sql"
	"path/filepath"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/calendar"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/compplan"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/goal"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/kpi"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/meeting"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/messaging/kafka"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/metricweight"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/middleware"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/payout"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/rbac"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/rbac/infra"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/revenue"
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/salesrep"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	repRepo := salesrep.NewRepository(gormDB)
	calendarRepo := calendar.NewRepository(gormDB)
	goalRepo := goal.NewRepository(gormDB)
	revenueRepo := revenue.NewRepository(gormDB)
	meetingRepo := meeting.NewRepository(gormDB)
	planRepo := compplan.NewRepository(gormDB)
	weightRepo := metricweight.NewRepository(gormDB)
	kpiRepo := kpi.NewRepository(gormDB)
	payoutRepo := payout.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	repService := salesrep.NewService(repRepo)
	revenueService := revenue.NewService(revenueRepo)
	collector := meeting.NewCollector(meetingRepo)
	planResolver := compplan.NewResolver(planRepo)
	weightResolver := metricweight.NewResolver(weightRepo)
	reconciler := kpi.NewReconciler(kpiRepo, collector)
	kpiService := kpi.NewService(kpiRepo)
	winnerTracker := goal.NewWinnerTracker(goalRepo)
	payoutService := payout.NewService(payout.ServiceDeps{
		RepRepo:        repRepo,
		CalendarRepo:   calendarRepo,
		GoalRepo:       goalRepo,
		RevenueService: revenueService,
		Collector:      collector,
		PlanResolver:   planResolver,
		WeightResolver: weightResolver,
		Reconciler:     reconciler,
		PayoutRepo:     payoutRepo,
		WinnerTracker:  winnerTracker,
		Outbox:         outboxRepo,
	})

	// --- Handlers ---
	repHandler := salesrep.NewHandler(repService)
	goalHandler := goal.NewHandler(goalRepo)
	kpiHandler := kpi.NewHandler(kpiService)
	payoutHandler := payout.NewHandlerWithRedis(payoutService, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	{
		salesrep.RegisterRoutes(api, repHandler, rbacService)
		goal.RegisterRoutes(api, goalHandler, rbacService)
		kpi.RegisterRoutes(api, kpiHandler, rbacService)
		payout.RegisterRoutes(api, payoutHandler, rbacService, rdb)
	}

	return nil
}
