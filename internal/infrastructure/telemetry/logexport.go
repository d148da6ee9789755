package telemetry

import (
	"context"
	"fmt"

	"github.com/flexo/backend/internal/infrastructure/config"
	"github.com/flexo/backend/internal/infrastructure/logger"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogExport ships zap records to the collector next to traces and metrics.
// It is built before the application logger, which tees Core() in.
type LogExport struct {
	provider *sdklog.LoggerProvider
	scope    string
	level    zapcore.Level
}

func NewLogExport(ctx context.Context, cfg config.TelemetryConfig, log *zap.Logger) (*LogExport, error) {
	le := &LogExport{scope: cfg.ServiceName, level: logger.ParseLevel(cfg.LogsMinLevel)}
	if !cfg.Enabled || !cfg.LogsEnabled {
		return le, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp log exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	le.provider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(le.provider)

	if log != nil {
		log.Info("Log export enabled",
			zap.String("collector", cfg.CollectorEndpoint),
			zap.Stringer("min_level", le.level),
		)
	}
	return le, nil
}

func (le *LogExport) IsEnabled() bool { return le.provider != nil }

// Core feeds the OTLP pipeline with records at or above the configured
// level. It is a no-op core while export is off.
func (le *LogExport) Core() zapcore.Core {
	if le.provider == nil {
		return zapcore.NewNopCore()
	}
	return filterLevel(otelzap.NewCore(le.scope, otelzap.WithLoggerProvider(le.provider)), le.level)
}

// filterLevel raises the minimum level of core. The bridge core accepts
// every level, so the increase cannot fail there; other cores are returned
// unchanged if it does.
func filterLevel(core zapcore.Core, level zapcore.Level) zapcore.Core {
	filtered, err := zapcore.NewIncreaseLevelCore(core, level)
	if err != nil {
		return core
	}
	return filtered
}

// Shutdown flushes buffered records
func (le *LogExport) Shutdown(ctx context.Context) error {
	if le.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := le.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("flush log export: %w", err)
	}
	return nil
}
