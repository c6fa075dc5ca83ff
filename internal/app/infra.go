package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/rd1855/portfolio_backend/config"
	"github.com/rd1855/portfolio_backend/internal/ledger"
	"github.com/rd1855/portfolio_backend/pkg/constants"
	"github.com/rd1855/portfolio_backend/pkg/email"
	"github.com/rd1855/portfolio_backend/pkg/events"
	"github.com/rd1855/portfolio_backend/pkg/observability"
	redispkg "github.com/rd1855/portfolio_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideLedger),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideEventBus),
	fx.Provide(ProvideOTel),
)

// ProvideRedis returns a nil client when redis.addr is empty.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb, err := redispkg.NewRedisFromCentral(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		slog.Debug("redis not configured")
		return nil, nil
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideLedger(cfg *config.Config, rdb *redis.Client) (ledger.Ledger, error) {
	seq := ledger.NewSequence(time.Now)
	switch cfg.Ledger.Backend {
	case config.LedgerRedis:
		if rdb == nil {
			return nil, fmt.Errorf("ledger backend %q needs redis.addr", cfg.Ledger.Backend)
		}
		slog.Info("ledger backend: redis", "prefix", cfg.Ledger.KeyPrefix)
		return ledger.NewRedis(rdb, seq, cfg.Ledger.KeyPrefix), nil
	default:
		slog.Info("ledger backend: memory")
		return ledger.NewMemory(seq), nil
	}
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

// ProvideEventBus picks NATS or the in-process bus and wraps it with the
// Kafka sink when that is enabled.
func ProvideEventBus(lc fx.Lifecycle, cfg *config.Config) (events.Bus, error) {
	var bus events.Bus
	if cfg.Events.Nats.Enabled {
		nb, err := events.ConnectNATS(cfg.Events.Nats.URL, constants.AppName)
		if err != nil {
			return nil, err
		}
		slog.Info("event bus: nats", "url", cfg.Events.Nats.URL)
		bus = nb
	} else {
		bus = events.NewLocal()
	}

	if cfg.Events.Kafka.Enabled {
		sink, err := events.NewKafkaSink(cfg.Events.Kafka)
		if err != nil {
			_ = bus.Close()
			return nil, err
		}
		slog.Info("event export: kafka", "topic", cfg.Events.Kafka.Topic)
		bus = events.NewTee(bus, sink)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing event bus")
			return bus.Close()
		},
	})
	return bus, nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		TracingEnabled: cfg.Observability.Tracing.Enabled,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
