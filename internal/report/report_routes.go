package report

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/dashboard",
			rbac.Authorize(rbacService, "report", "read"),
			handler.Dashboard,
		)

		reports.GET("/breakdowns",
			rbac.Authorize(rbacService, "report", "read"),
			handler.Breakdowns,
		)

		reports.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "report", "export"),
			handler.Export,
		)
	}
}
