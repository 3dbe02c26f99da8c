package auth

import (
	"github.com/gin-gonic/gin"

	"leavehub/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, loginLimiter gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/login", loginLimiter, handler.Login)
		group.GET("/me", middleware.AuthMiddleware(), handler.GetMe)
	}
}
