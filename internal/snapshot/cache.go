// Package snapshot caches unified collection builds for the serving layer.
// The core is stateless by design; deciding staleness tolerance is this
// calling layer's job.
package snapshot

import (
	"context"
	"sync"
	"time"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// Cache serves a point-in-time collection for up to a TTL and rebuilds on
// expiry or after Invalidate. The mutex is held across the rebuild, so
// concurrent requests during a rebuild share the one build instead of
// stampeding the record sources.
type Cache struct {
	builder usecases_port.BuildCollectionUseCase
	ttl     time.Duration
	logger  port.LoggerPort

	mu      sync.Mutex
	current *domain.Collection
	builtAt time.Time
	now     func() time.Time
}

func NewCache(builder usecases_port.BuildCollectionUseCase, ttl time.Duration, logger port.LoggerPort) *Cache {
	return &Cache{
		builder: builder,
		ttl:     ttl,
		logger:  logger.WithFields(port.Fields{"component": "snapshot_cache"}),
		now:     time.Now,
	}
}

func (c *Cache) Get(ctx context.Context) (*domain.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && c.now().Sub(c.builtAt) < c.ttl {
		return c.current, nil
	}

	collection, err := c.builder.Execute(ctx)
	if err != nil {
		// A stale snapshot still beats an error page.
		if c.current != nil {
			c.logger.Warn("Rebuild failed, serving stale snapshot", port.Fields{"error": err.Error()})
			return c.current, nil
		}
		return nil, err
	}

	c.current = collection
	c.builtAt = c.now()
	c.logger.Debug("Snapshot rebuilt", port.Fields{"properties": len(collection.Properties)})
	return c.current, nil
}

// Invalidate drops the cached snapshot so the next Get re-observes the raw
// stores. Called when a record-change event arrives.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.builtAt = time.Time{}
	c.mu.Unlock()
	c.logger.Debug("Snapshot invalidated", nil)
}
