package salesrep

import (
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	reps := r.Group("/reps")
	reps.Use(middleware.AuthMiddleware())
	{
		reps.GET("", middleware.RBACAuthorize(rbacService, "salesrep", "read"), handler.GetAll)
		reps.GET("/:id", middleware.RBACAuthorize(rbacService, "salesrep", "read"), handler.GetById)
	}
}
