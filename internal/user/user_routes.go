package user

import (
	"github.com/gin-gonic/gin"

	"leavehub/internal/middleware"
	"leavehub/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", middleware.RBACAuthorize(rbacService, "users", "manage"), handler.Create)
		admin.GET("", middleware.RBACAuthorize(rbacService, "users", "manage"), handler.GetAll)
	}
}
