package kpi

import (
	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	kpis := r.Group("/kpis")
	kpis.Use(middleware.AuthMiddleware())
	{
		kpis.GET("", middleware.RBACAuthorize(rbacService, "kpi", "read"), handler.GetByMonth)
		kpis.PATCH("/:id", middleware.RBACAuthorize(rbacService, "kpi", "write"), handler.ManualEdit)
	}
}
