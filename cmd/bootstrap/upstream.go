package bootstrap

import (
	"context"
	"log/slog"

	"barberflow/internal/infra/bookingapi"
	"barberflow/internal/infra/cache"
	"barberflow/internal/infra/metrics"
	"barberflow/internal/infra/redisconn"
	"barberflow/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewBookingClient,
		NewRedis,
		NewCatalog,
	),
)

func NewBookingClient(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) *bookingapi.Client {
	return bookingapi.NewClient(cfg.Upstream, cfg.Calendar.Location(), logger, m)
}

func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, cleanup, err := redisconn.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("Catalog cache disabled, REDIS_ADDR is empty")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewCatalog(client *redis.Client, source *bookingapi.Client, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) *cache.Catalog {
	return cache.NewCatalog(client, source, cfg.Redis.TTL, logger, m)
}
