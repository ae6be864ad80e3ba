// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/calendar"
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	infracache "github.com/habit-tracker/backend/internal/infra/cache"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	integrationcache "github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies
// wired. The Redis client is optional: without it the year view is computed
// on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	habitRepo := persistence.NewHabitRepository(db)
	userRepo := persistence.NewUserRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	var aggregationCache adapter.AggregationCache
	if redisClient != nil {
		aggregationCache = integrationcache.NewAggregationCache(redisClient, cfg.Cache.YearViewTTL)
	}

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, clock)
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo, clock)
	toggleCompletionUseCase := habit.NewToggleCompletionUseCase(habitRepo, aggregationCache, clock)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo, aggregationCache)

	// Create calendar use cases
	dayViewUseCase := calendar.NewGetDayViewUseCase(habitRepo, clock)
	monthViewUseCase := calendar.NewGetMonthViewUseCase(habitRepo)
	yearViewUseCase := calendar.NewGetYearViewUseCase(habitRepo, aggregationCache)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(habitRepo, clock)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(userRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return infracache.HealthCheck(redisClient)
		},
	)

	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		toggleCompletionUseCase,
		deleteHabitUseCase,
	)

	calendarController := controller.NewCalendarController(
		dayViewUseCase,
		monthViewUseCase,
		yearViewUseCase,
		clock,
	)

	dashboardController := controller.NewDashboardController(summaryUseCase)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		logoutUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		habitController,
		calendarController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
