package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/cache"
	"go.uber.org/zap"
)

var cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "resource_cache_requests_total",
	Help: "Resource cache lookups by result.",
}, []string{"resource", "result"})

// dependents lists, per kind, the kinds whose cached data embeds a
// reference to it and so must be refreshed after it changes.
var dependents = map[domain.Kind][]domain.Kind{
	domain.KindUser:    {domain.KindArtist, domain.KindManager},
	domain.KindArtist:  {domain.KindMusic},
	domain.KindManager: {domain.KindArtist},
	domain.KindMusic:   nil,
}

// Cache is the read-through, invalidate-on-mutation layer over a store.
// Each kind has a generation; a read that started before an invalidation
// does not write its result back.
type Cache struct {
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger

	mu          sync.Mutex
	generations map[domain.Kind]uint64
}

func NewCache(store cache.Store, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		store:       store,
		ttl:         ttl,
		logger:      logger.Named("resource.cache"),
		generations: map[domain.Kind]uint64{},
	}
}

// Key builds "<kind>:<scope>:<op>". scope is the caller's user id.
func Key(kind domain.Kind, scope int, op string) string {
	return fmt.Sprintf("%s:%d:%s", kind, scope, op)
}

func (c *Cache) generation(kind domain.Kind) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[kind]
}

// load decodes a cached value into out and reports a hit
func (c *Cache) load(ctx context.Context, kind domain.Kind, key string, out any) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		ok = false
	}
	if ok {
		if err := json.Unmarshal(raw, out); err == nil {
			cacheRequestsTotal.WithLabelValues(string(kind), "hit").Inc()
			return true
		}
	}
	cacheRequestsTotal.WithLabelValues(string(kind), "miss").Inc()
	return false
}

// fill stores v unless kind was invalidated after gen was read. A
// non-positive ttl disables caching.
func (c *Cache) fill(ctx context.Context, kind domain.Kind, key string, gen uint64, v any) {
	if c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[kind] != gen {
		c.logger.Debug("skipping stale cache fill", zap.String("key", key))
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every cached entry of kind and of the kinds depending on it
func (c *Cache) Invalidate(ctx context.Context, kind domain.Kind) {
	kinds := closure(kind)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range kinds {
		c.generations[k]++
		if err := c.store.DeletePrefix(ctx, string(k)+":"); err != nil {
			c.logger.Warn("cache invalidation failed", zap.String("resource", string(k)), zap.Error(err))
		}
	}
	c.logger.Debug("cache invalidated", zap.String("origin", string(kind)), zap.Any("resources", kinds))
}

// closure walks dependents transitively, origin first, without revisiting
func closure(origin domain.Kind) []domain.Kind {
	seen := map[domain.Kind]bool{origin: true}
	out := []domain.Kind{origin}
	for i := 0; i < len(out); i++ {
		for _, dep := range dependents[out[i]] {
			if !seen[dep] {
				seen[dep] = true
				out = append(out, dep)
			}
		}
	}
	return out
}
