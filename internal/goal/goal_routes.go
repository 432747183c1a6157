package goal

import (
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	goals := r.Group("/goals")
	goals.Use(middleware.AuthMiddleware())
	{
		goals.GET("/winners", middleware.RBACAuthorize(rbacService, "goal", "read"), handler.GetWinners)
	}
}
