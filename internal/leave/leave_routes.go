package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"leavehub/internal/middleware"
	"leavehub/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	redisClient *redis.Client,
) {
	employee := r.Group("/employee/requests")
	employee.Use(middleware.AuthMiddleware())
	{
		employee.POST("",
			middleware.RBACAuthorize(rbacService, "requests", "submit"),
			middleware.Idempotency(redisClient),
			handler.Submit,
		)
		employee.GET("", middleware.RBACAuthorize(rbacService, "requests", "read-own"), handler.MyRequests)
	}

	manager := r.Group("/manager/requests")
	manager.Use(middleware.AuthMiddleware())
	{
		manager.GET("/pending", middleware.RBACAuthorize(rbacService, "requests", "read-team"), handler.Pending)
		manager.GET("/history", middleware.RBACAuthorize(rbacService, "requests", "read-team"), handler.History)
		manager.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "requests", "decide"), handler.Approve)
		manager.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "requests", "decide"), handler.Reject)
	}
}
