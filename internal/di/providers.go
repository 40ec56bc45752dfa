package di

import (
	"fmt"

	"github.com/sgasse/chrono-intervals/internal/handler/api"
	"github.com/sgasse/chrono-intervals/internal/usecase"
	"github.com/sgasse/chrono-intervals/pkg/cache"
	"github.com/sgasse/chrono-intervals/pkg/config"
	applogger "github.com/sgasse/chrono-intervals/pkg/logger"
	"github.com/sgasse/chrono-intervals/pkg/metrics"
	"github.com/sgasse/chrono-intervals/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache creates the cache backend selected by config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Type {
	case "memory", "":
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.Size)), nil
	case "redis":
		return newRedisCache(cfg)
	case "layered":
		rc, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc, cache.WithMemoryMaxSize(cfg.Cache.Size)), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Cache.Type)
	}
}

func newRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, nil
}

// ProvideIntervalsUseCase creates the intervals use case.
func ProvideIntervalsUseCase(cfg *config.Config, c cache.Service, m *metrics.Recorder) *usecase.IntervalsUseCase {
	return usecase.NewIntervalsUseCase(c, m, cfg.Cache.TTL, cfg.Intervals.MaxPerRequest)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(l *applogger.Logger, uc *usecase.IntervalsUseCase) *api.IntervalsEchoHandler {
	return api.NewIntervalsEchoHandler(l, uc)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	h *api.IntervalsEchoHandler,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, h, c)
}
