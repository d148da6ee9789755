package telemetry

import (
	"context"
	"fmt"
	"os"

	"github.com/flexo/backend/internal/infrastructure/config"
	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// Profiler pushes continuous profiles to Pyroscope
type Profiler struct {
	session *pyroscope.Profiler
	log     *zap.Logger
}

var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// NewProfiler starts pushing when cfg.Enabled. A disabled profiler is
// still safe to Stop.
func NewProfiler(cfg config.ProfilerConfig, log *zap.Logger) (*Profiler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Profiler{log: log}
	if !cfg.Enabled {
		return p, nil
	}

	session, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.ApplicationName,
		ServerAddress:     cfg.ServerAddress,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		Logger:            pyroscopeLog{log.Named("pyroscope").Sugar()},
		Tags:              hostTags(),
		ProfileTypes:      profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	p.session = session
	log.Info("Profiler started",
		zap.String("server", cfg.ServerAddress),
		zap.String("application", cfg.ApplicationName),
	)
	return p, nil
}

func hostTags() map[string]string {
	tags := make(map[string]string, 1)
	if host, err := os.Hostname(); err == nil && host != "" {
		tags["hostname"] = host
	}
	return tags
}

func (p *Profiler) IsEnabled() bool { return p.session != nil }

func (p *Profiler) Stop() error {
	if p.session == nil {
		return nil
	}
	if err := p.session.Stop(); err != nil {
		return fmt.Errorf("stop pyroscope: %w", err)
	}
	p.log.Info("Profiler stopped")
	return nil
}

// ProfileLabels tag samples taken while a request is served
type ProfileLabels struct {
	Method   string
	Route    string
	Resource string
	Role     string
}

func (l ProfileLabels) pairs() []string {
	out := make([]string, 0, 8)
	for _, kv := range [][2]string{
		{"method", l.Method},
		{"route", l.Route},
		{"resource", l.Resource},
		{"role", l.Role},
	} {
		if kv[1] != "" {
			out = append(out, kv[0], kv[1])
		}
	}
	return out
}

// Profile runs fn with labels attached to the goroutine
func Profile(ctx context.Context, labels ProfileLabels, fn func(context.Context)) {
	pairs := labels.pairs()
	if len(pairs) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

type pyroscopeLog struct{ s *zap.SugaredLogger }

func (l pyroscopeLog) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l pyroscopeLog) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l pyroscopeLog) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
