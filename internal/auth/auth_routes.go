package auth

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// Login stays unauthenticated and unlimited: the credential check
		// has no lockout or rate limiting.
		authGroup.POST("/login", handler.Login)

		authGroup.POST("/logout", middleware.AuthMiddleware(), handler.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
