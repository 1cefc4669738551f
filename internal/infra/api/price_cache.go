package api

import (
	"context"
	"sync"
	"time"

	"digital-gold-assistant/internal/domain/ports/adapter"
	"digital-gold-assistant/internal/infra/metrics"
)

var _ adapter.PriceSource = (*priceCacheDecorator)(nil)

// priceCacheDecorator caches the gold price for a short TTL so that rapid
// quantity-preview edits do not hammer the backend. Single value, in-memory:
// the controller runs one session in one process.
type priceCacheDecorator struct {
	inner adapter.PriceSource
	ttl   time.Duration

	mu        sync.Mutex
	price     float64
	fetchedAt time.Time
}

func NewPriceCacheDecorator(inner adapter.PriceSource, ttl time.Duration) adapter.PriceSource {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &priceCacheDecorator{inner: inner, ttl: ttl}
}

func (d *priceCacheDecorator) GoldPrice(ctx context.Context) (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.fetchedAt.IsZero() && time.Since(d.fetchedAt) < d.ttl {
		metrics.IncPriceCacheRequest("hit")
		return d.price, nil
	}

	metrics.IncPriceCacheRequest("miss")
	price, err := d.inner.GoldPrice(ctx)
	if err != nil {
		// A stale value is still advisory-grade; serve it rather than fail
		// the preview when we have one.
		if !d.fetchedAt.IsZero() {
			return d.price, nil
		}
		return 0, err
	}
	d.price = price
	d.fetchedAt = time.Now()
	return price, nil
}
