package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"leavehub/internal/shared/response"
)

type Handler struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(db *gorm.DB, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, rdb: rdb, logger: l}
}

// Check pings every backing store and reports per-dependency status. Any
// failing dependency turns the whole check into a 503.
func (h *Handler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	status := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		status["database"] = "unavailable"
		healthy = false
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.logger.Error("redis health check failed", zap.Error(err))
			status["redis"] = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "one or more dependencies are down", status)
		return
	}

	response.Success(c, http.StatusOK, status, nil)
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/healthz", handler.Check)
}
