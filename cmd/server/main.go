package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gdcworld/clinic-backoffice/internal/api"
	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/infrastructure/config"
	"github.com/gdcworld/clinic-backoffice/internal/infrastructure/db/postgres"
	"github.com/gdcworld/clinic-backoffice/internal/infrastructure/db/redis"
	"github.com/gdcworld/clinic-backoffice/pkg/logger"
)

// @title        Clinic Back-Office API
// @version      1.0
// @description  Role-scoped staff account management and operational ledgers.
// @BasePath     /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := postgres.NewRoleRepository(db).Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed role table")
	}
	if err := seedAdmin(ctx, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	} else {
		log.Warn().Msg("REDIS_ADDR not set, idempotent create replay disabled")
	}

	e := api.NewRouter(db, rdb, cfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// seedAdmin bootstraps the first admin account on an empty accounts table so
// a fresh deployment can be logged into.
func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return nil
	}

	repo := postgres.NewAccountRepository(db)
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &domain.Account{
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
		Status:       "active",
	})
	return err
}
