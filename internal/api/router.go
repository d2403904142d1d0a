package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scoutlink/player-platform/internal/api/handler"
	"github.com/scoutlink/player-platform/internal/api/middleware"
	"github.com/scoutlink/player-platform/internal/core/domain"
	"github.com/scoutlink/player-platform/internal/core/ports"
	"github.com/scoutlink/player-platform/internal/core/service"
	mongodb "github.com/scoutlink/player-platform/internal/infrastructure/db/mongo"
	"github.com/scoutlink/player-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/scoutlink/player-platform/internal/infrastructure/db/redis"
)

// Deps carries everything the router needs that is decided at startup:
// the selected credential backend, the store clients, and the notification
// queue.
type Deps struct {
	PG        *postgres.Connection
	UserRepo  ports.UserRepository
	Mongo     *mongo.Database
	Redis     *redis.Client
	Notifier  service.Notifier
	Notifs    ports.NotificationService
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("platform"))
	e.Use(middleware.Guard(d.JWTSecret))

	// --- Dependencies ---
	trialRepo := postgres.NewTrialRepository(d.PG)
	appRepo := postgres.NewApplicationRepository(d.PG)
	paymentRepo := postgres.NewPaymentRepository(d.PG)
	messageRepo := mongodb.NewMessageRepository(d.Mongo)
	connCache := redisdb.NewConnectionCache(d.Redis)

	authService := service.NewAuthService(d.UserRepo, d.JWTSecret, d.TokenTTL)
	userService := service.NewUserService(d.UserRepo)
	trialService := service.NewTrialService(trialRepo)
	appService := service.NewApplicationService(appRepo, trialRepo, d.Notifier, d.Log)
	paymentService := service.NewPaymentService(paymentRepo, appRepo, trialRepo)
	messageService := service.NewMessageService(messageRepo, d.UserRepo, connCache, d.Notifier, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(authService, d.JWTSecret, d.TokenTTL)
	userHandler := handler.NewUserHandler(userService)
	trialHandler := handler.NewTrialHandler(trialService)
	appHandler := handler.NewApplicationHandler(appService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	messageHandler := handler.NewMessageHandler(messageService)
	notificationHandler := handler.NewNotificationHandler(d.Notifs)

	// --- Auth routes (public; the guard classifies /api/auth first) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/session", sessionHandler.Create)
	e.GET("/api/auth/session", sessionHandler.Get)
	e.DELETE("/api/auth/session", sessionHandler.Delete)

	// --- Resource routes (token required, role-gated per route) ---
	g := e.Group("/api", middleware.Auth(d.JWTSecret))

	g.GET("/users", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	g.GET("/users/:id", userHandler.Get)
	g.PATCH("/users/:id", userHandler.UpdateName)
	g.PATCH("/users/:id/active", userHandler.SetActive, middleware.RBAC(domain.RoleAdmin))

	g.POST("/trials", trialHandler.Create, middleware.RBAC(domain.RoleAcademy, domain.RoleAdmin))
	g.GET("/trials", trialHandler.List)
	g.GET("/trials/:id", trialHandler.Get)
	g.PATCH("/trials/:id/close", trialHandler.Close, middleware.RBAC(domain.RoleAcademy, domain.RoleAdmin))

	g.POST("/applications", appHandler.Apply, middleware.RBAC(domain.RolePlayer))
	g.GET("/applications", appHandler.List)
	g.PATCH("/applications/:id", appHandler.Decide, middleware.RBAC(domain.RoleAcademy, domain.RoleAdmin))

	g.POST("/payments", paymentHandler.Create, middleware.RBAC(domain.RolePlayer))
	g.GET("/payments", paymentHandler.List)
	g.PATCH("/payments/:id", paymentHandler.Settle, middleware.RBAC(domain.RoleAdmin))

	g.POST("/messages", messageHandler.Send)
	g.GET("/messages/:userID", messageHandler.Thread)
	g.GET("/connections", messageHandler.Connections)

	g.GET("/notifications", notificationHandler.List)
	g.POST("/notifications/:id/read", notificationHandler.MarkRead)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.PG, d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
