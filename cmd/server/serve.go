package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"blog-api/internal/auth"
	"blog-api/internal/config"
	"blog-api/internal/handler"
	"blog-api/internal/infrastructure/database"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/service"
	"blog-api/internal/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to the database and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
}

func newSupervisor(cfg *config.Config) *database.Supervisor[*pgxpool.Pool] {
	return database.NewSupervisor(database.PostgresConnector(poolConfig(cfg)), database.Options{
		RetryDelay:    cfg.DBRetryDelay,
		CheckInterval: cfg.DBCheckInterval,
		OnStateChange: func(s database.State) {
			metrics.SetConnectionState(int(s))
			logger.Info("Database state changed", slog.String("state", s.String()))
		},
		OnAttempt: metrics.ObserveConnectionAttempt,
	})
}

// services builds the repository and service layers on top of pool.
func services(cfg *config.Config, pool *pgxpool.Pool, reporter service.FailureReporter) (handler.RouterDeps, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL))
	if err != nil {
		return handler.RouterDeps{}, err
	}
	v := validator.NewValidator()

	return handler.RouterDeps{
		Auth: service.NewAuthService(
			repository.NewPostgresUserRepository(pool),
			auth.NewPasswordHasher(0),
			tokens,
			v,
			reporter,
		),
		Articles: service.NewArticleService(repository.NewPostgresArticleRepository(pool), v, reporter),
		Comments: service.NewCommentService(repository.NewPostgresCommentRepository(pool), v, reporter),
		Tokens:   tokens,
	}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The supervisor keeps retrying in the background; the listener only
	// opens after the first successful connection.
	supervisor := newSupervisor(cfg)
	runCtx, cancelRun := context.WithCancel(ctx)
	supervised := make(chan struct{})
	go func() {
		supervisor.Run(runCtx)
		close(supervised)
	}()
	defer func() {
		cancelRun()
		<-supervised
		supervisor.Close()
	}()

	logger.Info("Waiting for database", slog.String("host", cfg.DBHost), slog.Int("port", cfg.DBPort))
	pool, err := supervisor.Wait(ctx)
	if err != nil {
		logger.Info("Shutting down before the database became available")
		return nil
	}

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	deps, err := services(cfg, pool, supervisor)
	if err != nil {
		return err
	}
	deps.Store = supervisor

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler.NewRouter(deps),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
	return nil
}
