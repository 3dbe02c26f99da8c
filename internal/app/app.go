package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavehub/internal/balance"
	"leavehub/internal/holiday"
	"leavehub/internal/leave"
	"leavehub/internal/leavetype"
	"leavehub/internal/seed"
	"leavehub/internal/shared/connection"
	"leavehub/internal/user"
)

// BuildApp connects the backing stores, migrates the schema, optionally
// seeds demo data and mounts every module's routes on the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// Leave types and users first; balances and requests reference them.
	if err := db.AutoMigrate(
		&leavetype.LeaveType{},
		&holiday.CorporateHoliday{},
		&user.User{},
		&balance.LeaveBalance{},
		&leave.LeaveRequest{},
	); err != nil {
		return err
	}
	logger.Info("schema migrated")

	if os.Getenv("SEED_DEMO") == "true" {
		if err := seed.Run(context.Background(), db); err != nil {
			return err
		}
	}

	return registerModules(router, db, redisClient)
}
