// Package cache holds the read-through cache of the booking catalog. Only
// services and barbers are cached; drafts and calendar events never are.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barberflow/internal/domain/wizard"
	"barberflow/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	servicesKey = "barberflow:catalog:services"
	barbersKey  = "barberflow:catalog:barbers"
)

// Source is where catalog entries come from on a miss.
type Source interface {
	ListServices(ctx context.Context) ([]wizard.Service, error)
	ListBarbers(ctx context.Context) ([]wizard.Barber, error)
}

type Catalog struct {
	client  *redis.Client
	source  Source
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCatalog wraps source. A nil client disables caching and every call goes
// straight to source.
func NewCatalog(client *redis.Client, source Source, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *Catalog {
	return &Catalog{
		client:  client,
		source:  source,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

func (c *Catalog) Services(ctx context.Context) ([]wizard.Service, error) {
	return readThrough(ctx, c, servicesKey, c.source.ListServices)
}

func (c *Catalog) Barbers(ctx context.Context) ([]wizard.Barber, error) {
	return readThrough(ctx, c, barbersKey, c.source.ListBarbers)
}

// Invalidate drops both catalog entries.
func (c *Catalog) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, servicesKey, barbersKey).Err()
}

// readThrough treats redis as best effort: a cache failure is logged and the
// source answers instead.
func readThrough[T any](ctx context.Context, c *Catalog, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if c.client == nil {
		return load(ctx)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []T
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			c.metrics.ObserveCache(true)
			return cached, nil
		}
		c.logger.Warn("Discarding undecodable catalog entry", slog.String("key", key))
	case err != redis.Nil:
		c.logger.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	c.metrics.ObserveCache(false)

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(items)
	if err == nil {
		err = c.client.Set(ctx, key, encoded, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return items, nil
}
