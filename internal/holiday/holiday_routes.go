package holiday

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
	admin := r.Group("/admin/holidays")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", middleware.RBACAuthorize(rbacService, "holidays", "manage"), handler.Create)
	}

	shared := r.Group("/holidays")
	shared.Use(middleware.AuthMiddleware())
	{
		shared.GET("", middleware.RBACAuthorize(rbacService, "holidays", "read"), handler.GetAll)
	}
}
