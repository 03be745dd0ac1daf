package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("",
			rbac.Authorize(rbacService, "leave", "read"),
			handler.GetAll,
		)

		leaves.GET("/pending",
			rbac.Authorize(rbacService, "leave", "read"),
			handler.GetPending,
		)

		leaves.GET("/:id",
			rbac.Authorize(rbacService, "leave", "read"),
			handler.GetById,
		)

		leaves.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "leave", "create"),
			handler.Apply,
		)

		leaves.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "leave", "decide"),
			handler.Decide,
		)
	}

	// Per-employee view used by the employee detail page.
	r.GET("/employees/:id/leaves",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		rbac.Authorize(rbacService, "leave", "read"),
		handler.GetByEmployee,
	)
}
