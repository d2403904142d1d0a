package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scoutlink/player-platform/internal/api"
	"github.com/scoutlink/player-platform/internal/core/ports"
	"github.com/scoutlink/player-platform/internal/core/service"
	"github.com/scoutlink/player-platform/internal/infrastructure/config"
	mongodb "github.com/scoutlink/player-platform/internal/infrastructure/db/mongo"
	"github.com/scoutlink/player-platform/internal/infrastructure/db/postgres"
	"github.com/scoutlink/player-platform/internal/infrastructure/db/postgrest"
	redisdb "github.com/scoutlink/player-platform/internal/infrastructure/db/redis"
	"github.com/scoutlink/player-platform/internal/infrastructure/queue"
	"github.com/scoutlink/player-platform/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- Stores ---
	pg, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pg.Close()

	mongoClient, mongoDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Credential backend: chosen once at startup, never per request ---
	var userRepo ports.UserRepository
	if cfg.UseRESTBackend() {
		userRepo = postgrest.NewUserRepository(cfg.PostgREST.URL, cfg.PostgREST.Key)
		log.Info().Str("url", cfg.PostgREST.URL).Msg("using REST credential backend")
	} else {
		userRepo = postgres.NewUserRepository(pg)
		log.Info().Msg("using direct Postgres credential backend")
	}

	// --- Notification pipeline ---
	notificationRepo := mongodb.NewNotificationRepository(mongoDB)
	dedup := redisdb.NewDedupChecker(rdb)
	notificationService := service.NewNotificationService(notificationRepo, dedup, log)

	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		PG:        pg,
		UserRepo:  userRepo,
		Mongo:     mongoDB,
		Redis:     rdb,
		Notifier:  dispatcher,
		Notifs:    notificationService,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  tokenTTL,
		Log:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("shutdown complete")
}
