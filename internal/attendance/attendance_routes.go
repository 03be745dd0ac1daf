package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("",
			rbac.Authorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)

		attendance.GET("/stats",
			rbac.Authorize(rbacService, "attendance", "read"),
			handler.Stats,
		)

		attendance.POST("",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "attendance", "mark"),
			handler.MarkPresent,
		)

		attendance.POST("/absent",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "attendance", "mark"),
			handler.MarkAbsent,
		)
	}
}
