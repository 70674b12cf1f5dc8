package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinichub/clinic-registry/internal/api"
	"github.com/clinichub/clinic-registry/internal/core/service"
	"github.com/clinichub/clinic-registry/internal/infrastructure/db/postgres"
	"github.com/clinichub/clinic-registry/internal/infrastructure/db/redis"
	"github.com/clinichub/clinic-registry/internal/infrastructure/queue"
	"github.com/clinichub/clinic-registry/internal/pkg/config"
	"github.com/clinichub/clinic-registry/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "clinic-registry",
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Repositories.
	clinicRepo := postgres.NewClinicRepository(db)
	userRepo := postgres.NewUserRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Audit pipeline: services publish, sharded workers persist.
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)

	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()
	dispatcher.Start(workerCtx)

	// Services.
	limiter := redis.NewLoginLimiter(rdb)
	clinicService := service.NewClinicService(clinicRepo, dispatcher, log)
	userService := service.NewUserService(userRepo, limiter, dispatcher, cfg.JWTSecret, cfg.JWTTTL, log)

	e := api.NewRouter(api.Deps{
		DB:            db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		ClinicService: clinicService,
		UserService:   userService,
		AuditService:  auditService,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
