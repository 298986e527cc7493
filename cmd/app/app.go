package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seelv/dancebook/internal/api"
	"github.com/seelv/dancebook/internal/clock"
	"github.com/seelv/dancebook/internal/config"
	"github.com/seelv/dancebook/internal/db"
	"github.com/seelv/dancebook/internal/domain"
	"github.com/seelv/dancebook/internal/logger"
	"github.com/seelv/dancebook/internal/repository/dao"
)

const shutdownTimeout = 10 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := db.OpenRedis(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize redis -> %w", err)
	}
	defer redisClient.Close()

	clk := clock.NewSystem()
	if err = bootstrapSuperuser(ctx, api.NewServices(conf, postgresDB, redisClient, clk)); err != nil {
		return fmt.Errorf("failed to create superuser -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, redisClient, clk)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

// bootstrapSuperuser creates the account named by SUPERUSER_EMAIL and
// SUPERUSER_PASSWORD when both are set. An existing account is left alone.
func bootstrapSuperuser(ctx context.Context, svcs api.Services) error {
	email, password := os.Getenv("SUPERUSER_EMAIL"), os.Getenv("SUPERUSER_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	user, err := svcs.Auth.CreateSuperuser(ctx, email, password)
	if errors.Is(err, domain.ErrUserEmailExists) {
		zap.L().Info("superuser already exists", zap.String("email", email))
		return nil
	}
	if err != nil {
		return fmt.Errorf("svcs.Auth.CreateSuperuser -> %w", err)
	}

	zap.L().Info("superuser created", zap.Uint("id", user.ID), zap.String("email", user.Email))

	return nil
}
