package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dpletzke/LightBnB/internal/api"
	"github.com/dpletzke/LightBnB/internal/cache"
	"github.com/dpletzke/LightBnB/internal/config"
	"github.com/dpletzke/LightBnB/internal/consumer"
	"github.com/dpletzke/LightBnB/internal/dao"
	"github.com/dpletzke/LightBnB/internal/logging"
	"github.com/dpletzke/LightBnB/internal/metrics"
	"github.com/dpletzke/LightBnB/internal/migrate"
	"github.com/dpletzke/LightBnB/internal/repository"
	"github.com/dpletzke/LightBnB/internal/service"
	"github.com/dpletzke/LightBnB/internal/telemetry"
)

var (
	Version = "v0.1.0"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "config file path")
	migrateFlag := flag.Bool("migrate", true, "run SQL migrations on startup")
	migrationsDir := flag.String("migrations", "migrations", "directory containing *.sql migration files")
	flag.Parse()

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	logging.SetGlobal(logger)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, Version)
	if err != nil {
		logging.Fatalf(ctx, "init telemetry: %v", err)
	}

	gdb, err := dao.OpenPostgres(cfg.Postgres.URL())
	if err != nil {
		logging.Fatalf(ctx, "open postgres: %v", err)
	}
	if err := dao.Ping(gdb, 5, time.Second*2); err != nil {
		logging.Fatalf(ctx, "ping postgres: %v", err)
	}
	db, err := dao.SQLDB(gdb, cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns, cfg.Postgres.ConnMaxLifeSec)
	if err != nil {
		logging.Fatalf(ctx, "postgres pool: %v", err)
	}
	defer db.Close()

	if *migrateFlag {
		abs, _ := filepath.Abs(*migrationsDir)
		if err := migrate.Run(abs, cfg.Postgres.URL()); err != nil {
			logging.Fatalf(ctx, "migrations failed: %v", err)
		}
		logging.Infof(ctx, "migrations applied from %s", abs)
	}

	m := metrics.New()

	searchCache, err := cache.New(cfg.Cache)
	if err != nil {
		logging.Fatalf(ctx, "init search cache: %v", err)
	}
	defer func() { _ = searchCache.Close() }()

	userDao := dao.NewUserDao(gdb)
	propertyRepo := repository.NewPropertyRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	userSvc := service.NewUserService(userDao, m)
	propertySvc := service.NewPropertyService(propertyRepo, searchCache, m)
	reservationSvc := service.NewReservationService(reservationRepo, m)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Events.Enabled {
		events, err := consumer.New(cfg.Events, searchCache)
		if err != nil {
			logging.Fatalf(ctx, "init event consumer: %v", err)
		}
		defer func() { _ = events.Close() }()
		if err := events.Start(runCtx); err != nil {
			logging.Fatalf(ctx, "start event consumer: %v", err)
		}
	}

	router := api.NewRouter(api.Dependencies{
		Users:        userSvc,
		Properties:   propertySvc,
		Reservations: reservationSvc,
		Metrics:      m,
		Version:      Version,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logging.Infof(ctx, "lightbnb server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf(ctx, "server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logging.Info(ctx, "shutdown signal received")

	shutdownCtx, cancel2 := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel2()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Errorf(ctx, "graceful shutdown failed: %v", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logging.Errorf(ctx, "telemetry shutdown failed: %v", err)
	}
	logging.Info(ctx, "server exited")
}
