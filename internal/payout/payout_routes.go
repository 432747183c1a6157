package payout

import (
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	payouts := r.Group("/payouts")
	payouts.Use(middleware.AuthMiddleware())
	{
		// Recalculate mahal; throttle per user di atas idempotency key.
		payouts.POST("/recalculate",
			middleware.RBACAuthorize(rbacService, "payout", "write"),
			middleware.RateLimitByUser(rate.Limit(1), 3),
			middleware.Idempotency(rdb),
			handler.Recalculate,
		)
		payouts.GET("", middleware.RBACAuthorize(rbacService, "payout", "read"), handler.GetByMonth)
		payouts.GET("/:id", middleware.RBACAuthorize(rbacService, "payout", "read"), handler.GetById)
	}
}
