package leavetype

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
	admin := r.Group("/admin/leave-types")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", middleware.RBACAuthorize(rbacService, "leave-types", "manage"), handler.Create)
	}

	shared := r.Group("/leave-types")
	shared.Use(middleware.AuthMiddleware())
	{
		shared.GET("", middleware.RBACAuthorize(rbacService, "leave-types", "read"), handler.GetAll)
	}
}
