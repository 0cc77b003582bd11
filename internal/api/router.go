package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskly/task-api/internal/api/handler"
	"github.com/taskly/task-api/internal/api/middleware"
	"github.com/taskly/task-api/internal/core/service"
	"github.com/taskly/task-api/internal/infrastructure/config"
	mongodb "github.com/taskly/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskly/task-api/internal/infrastructure/db/redis"
	"github.com/taskly/task-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the activity dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokens, throttle, log)

	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	taskService := service.NewTaskService(taskRepo, activityRepo, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	requireAuth := middleware.Auth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	// --- Auth routes (public; a stale token never blocks re-authentication) ---
	auth := e.Group("/auth", optionalAuth)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Task routes (bearer token required) ---
	tasks := e.Group("/tasks", requireAuth)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/count", taskHandler.Count)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.PUT("/:id", taskHandler.Replace)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.PATCH("/:id/complete", taskHandler.Complete)
	tasks.PATCH("/:id/uncomplete", taskHandler.Uncomplete)
	tasks.GET("/:id/activity", taskHandler.Activity)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
