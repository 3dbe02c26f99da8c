package balance

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
	admin := r.Group("/admin/leave-balances")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.PATCH("/:user_id", middleware.RBACAuthorize(rbacService, "balances", "manage"), handler.SetForUser)
	}

	employee := r.Group("/employee/balance")
	employee.Use(middleware.AuthMiddleware())
	{
		employee.GET("", middleware.RBACAuthorize(rbacService, "balances", "read-own"), handler.GetMine)
	}
}
