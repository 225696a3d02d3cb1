package database

import (
	"github.com/Calvin-77/movie-store-app/internal/config"
	"github.com/Calvin-77/movie-store-app/internal/metrics"
	"github.com/Calvin-77/movie-store-app/internal/model"
	"github.com/Calvin-77/movie-store-app/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Use(metrics.NewGormPlugin(m, logger)); err != nil {
		logger.Error("Failed to register query metrics", zap.Error(err))
		return nil, err
	}

	// Migration order matters: transactions references users and movies.
	if err := db.AutoMigrate(&model.User{}, &model.Movie{}, &model.Transaction{}); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return nil, err
	}

	return db, nil
}
