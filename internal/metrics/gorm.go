package metrics

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start"

const slowQueryThreshold = 100 * time.Millisecond

// GormPlugin times every statement the connection runs and feeds the
// DBQueryDuration histogram, labelled by operation, table and outcome.
type GormPlugin struct {
	metrics *Metrics
	logger  *zap.Logger
}

func NewGormPlugin(metrics *Metrics, logger *zap.Logger) *GormPlugin {
	return &GormPlugin{metrics: metrics, logger: logger}
}

func (p *GormPlugin) Name() string {
	return "metrics"
}

func (p *GormPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:before_create", p.start); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("metrics:after_create", p.finish("create")); err != nil {
		return err
	}
	if err := db.Callback().Query().Before("gorm:query").Register("metrics:before_query", p.start); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:after_query", p.finish("query")); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("metrics:before_update", p.start); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("metrics:after_update", p.finish("update")); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", p.start); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", p.finish("delete")); err != nil {
		return err
	}
	if err := db.Callback().Row().Before("gorm:row").Register("metrics:before_row", p.start); err != nil {
		return err
	}
	if err := db.Callback().Row().After("gorm:row").Register("metrics:after_row", p.finish("row")); err != nil {
		return err
	}
	if err := db.Callback().Raw().Before("gorm:raw").Register("metrics:before_raw", p.start); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").Register("metrics:after_raw", p.finish("raw"))
}

func (p *GormPlugin) start(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (p *GormPlugin) finish(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		duration := time.Since(start)

		status := "success"
		switch {
		case errors.Is(db.Error, gorm.ErrRecordNotFound):
			status = "not_found"
		case db.Error != nil:
			status = "error"
		}

		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}

		p.metrics.RecordDBQuery(operation, table, status, duration)

		if duration > slowQueryThreshold {
			p.logger.Warn("Slow database query",
				zap.String("operation", operation),
				zap.String("table", table),
				zap.String("status", status),
				zap.Duration("duration", duration),
			)
		}
	}
}
