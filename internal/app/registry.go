package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"leavehub/internal/auth"
	"leavehub/internal/balance"
	"leavehub/internal/health"
	"leavehub/internal/holiday"
	"leavehub/internal/leave"
	"leavehub/internal/leavetype"
	"leavehub/internal/middleware"
	"leavehub/internal/notification"
	"leavehub/internal/rbac"
	"leavehub/internal/user"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	notifier := notification.NewLogNotifier(zap.L())
	authService := auth.NewService(userRepo)
	userService := user.NewService(gormDB, userRepo, leaveTypeRepo, balanceRepo)
	leaveTypeService := leavetype.NewService(leaveTypeRepo)
	holidayService := holiday.NewService(holidayRepo)
	balanceService := balance.NewService(gormDB, balanceRepo, leaveTypeRepo)
	leaveService := leave.NewService(gormDB, leaveRepo, userRepo, balanceRepo, holidayRepo, notifier)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	holidayHandler := holiday.NewHandler(holidayService)
	balanceHandler := balance.NewHandler(balanceService)
	leaveHandler := leave.NewHandler(leaveService)
	rbacHandler := rbac.NewHandler(rbacService)
	healthHandler := health.NewHandler(gormDB, rdb)

	router.Use(middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		loginLimiter := middleware.RateLimitByIP(rate.Limit(1), 5)
		auth.RegisterRoutes(api, authHandler, loginLimiter)
		user.RegisterRoutes(api, userHandler, rbacService)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		balance.RegisterRoutes(api, balanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		rbac.RegisterRoutes(api, rbacHandler,
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(rbacService, "rbac", "manage"),
		)
	}

	health.RegisterRoutes(router, healthHandler)

	return nil
}
