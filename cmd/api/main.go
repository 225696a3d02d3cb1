package main

import (
	"context"
	"net/http"

	"github.com/Calvin-77/movie-store-app/internal/api"
	xvalidator "github.com/Calvin-77/movie-store-app/internal/api/validator"
	v1 "github.com/Calvin-77/movie-store-app/internal/api/v1"
	"github.com/Calvin-77/movie-store-app/internal/apperrors"
	"github.com/Calvin-77/movie-store-app/internal/auth"
	"github.com/Calvin-77/movie-store-app/internal/config"
	"github.com/Calvin-77/movie-store-app/internal/database"
	"github.com/Calvin-77/movie-store-app/internal/metrics"
	"github.com/Calvin-77/movie-store-app/internal/repository"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewMetrics,
			validator.New,
			xvalidator.NewXValidator,
			newTokenManager,
			newFiberApp,

			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewMovieRepository,
			repository.NewTransactionRepository,

			service.NewBalanceService,
			service.NewMovieService,
			service.NewReportService,
			service.NewUserService,
			service.NewAuthService,

			v1.NewHandler,
		),
		fx.Invoke(startServer, startMetricsServer),
	).Run()
}

func newTokenManager(cfg *config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL)
}

func newFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler(),
	})
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func startServer(app *fiber.App, handler *v1.Handler, tokens *auth.TokenManager,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, tokens)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(":" + cfg.API.Port); err != nil {
					logger.Error("API server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startMetricsServer(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Metrics server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
