package app

import (
	"database/sql"
	"time"

	"go-shiftplan/internal/autosave"
	"go-shiftplan/internal/availability"
	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/messaging/kafka"
	"go-shiftplan/internal/middleware"
	"go-shiftplan/internal/preference"
	"go-shiftplan/internal/settings"
	"go-shiftplan/internal/shift"
	"go-shiftplan/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const autosaveDebounce = 2 * time.Second

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) (*autosave.Queue, error) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	availabilityRepo := availability.NewRepository(gormDB)
	preferenceRepo := preference.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	shiftService := shift.NewService(db, shiftRepo, employeeRepo, outboxRepo)
	availabilityService := availability.NewService(db, availabilityRepo)
	preferenceService := preference.NewService(db, preferenceRepo)
	settingsService := settings.NewService(db, settingsRepo)
	summaryService := summary.NewService(
		employeeRepo, shiftRepo, availabilityService, preferenceService, settingsService, rdb,
	)

	autosaveQueue := autosave.NewQueue(autosave.NewShiftPersister(shiftService), autosaveDebounce)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	shiftHandler := shift.NewHandler(shiftService)
	availabilityHandler := availability.NewHandler(availabilityService)
	preferenceHandler := preference.NewHandler(preferenceService)
	settingsHandler := settings.NewHandler(settingsService)
	summaryHandler := summary.NewHandler(summaryService)
	autosaveHandler := autosave.NewHandler(autosaveQueue)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		shift.RegisterRoutes(api, shiftHandler, middleware.Idempotency(rdb))
		availability.RegisterRoutes(api, availabilityHandler)
		preference.RegisterRoutes(api, preferenceHandler)
		settings.RegisterRoutes(api, settingsHandler)
		summary.RegisterRoutes(api, summaryHandler)
		autosave.RegisterRoutes(api, autosaveHandler)
	}

	return autosaveQueue, nil
}
