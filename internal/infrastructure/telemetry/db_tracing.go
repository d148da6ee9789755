package telemetry

import (
	"fmt"
	"time"

	infraconfig "github.com/flexo/backend/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dbSystem          = "postgresql"
	slowQueryStartKey = "telemetry:query_start"
	callbackPrefix    = "telemetry:"
)

// AttrDBSlowQuery marks spans of statements slower than the configured
// threshold
var AttrDBSlowQuery = attribute.Key("db.slow_query")

// RegisterGormTracing installs otelgorm on db and marks slow statements
// on their span. Bind variables are left out of spans unless full SQL
// logging is on.
func RegisterGormTracing(db *gorm.DB, cfg infraconfig.TelemetryConfig, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled || !cfg.DBTraceEnabled {
		logger.Debug("Database tracing disabled")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(dbSystem)}
	if !cfg.DBLogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return fmt.Errorf("failed to register otelgorm: %w", err)
	}
	if cfg.DBSlowQueryThresh > 0 {
		if err := registerSlowQueryCallbacks(db, cfg.DBSlowQueryThresh); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.DBLogFullSQL),
		zap.Duration("slow_query_threshold", cfg.DBSlowQueryThresh),
	)
	return nil
}

func registerSlowQueryCallbacks(db *gorm.DB, threshold time.Duration) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(slowQueryStartKey, time.Now())
	}
	after := func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(slowQueryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok || time.Since(start) < threshold {
			return
		}
		span := trace.SpanFromContext(tx.Statement.Context)
		span.SetAttributes(AttrDBSlowQuery.Bool(true))
	}

	cb := db.Callback()
	steps := []struct {
		name   string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, s := range steps {
		if err := s.before(callbackPrefix+"before_"+s.name, before); err != nil {
			return fmt.Errorf("failed to register %s callback: %w", s.name, err)
		}
		if err := s.after(callbackPrefix+"after_"+s.name, after); err != nil {
			return fmt.Errorf("failed to register %s callback: %w", s.name, err)
		}
	}
	return nil
}
