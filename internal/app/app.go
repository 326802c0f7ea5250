package app

import (
	"os"

	"go-shiftplan/internal/middleware"
	"go-shiftplan/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the infrastructure, wires every module and registers
// the routes. The returned cleanup stops background workers and closes
// connections; the caller runs it after the HTTP server has shut down.
func BuildApp(router *gin.Engine) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	queue, err := registerModules(router, sqlDB, gormDB, redisClient)
	if err != nil {
		return nil, err
	}

	cleanup := func() {
		queue.Close()
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
