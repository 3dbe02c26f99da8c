package rbac

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the dry-run enforcement endpoint. Auth and the
// admin-only guard are attached by the caller to avoid an import cycle with
// the middleware package.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards ...gin.HandlerFunc) {
	group := r.Group("/admin/rbac")
	group.Use(guards...)
	{
		group.POST("/enforce", handler.Enforce)
	}
}
