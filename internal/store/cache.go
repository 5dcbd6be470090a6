package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	models "io.winapps.thiday/internal/models/word"
)

// cacheGenKey holds the current cache generation. DeleteAll bumps it, which
// orphans every entry written under an older generation until its TTL runs out.
const cacheGenKey = "word:gen"

// Cached puts a Redis read-through cache in front of another Store. Only
// found words are cached. Read-side cache failures are logged and fall back
// to the wrapped store.
type Cached struct {
	next   Store
	redis  redis.Cmdable
	ttl    time.Duration
	logger *zap.SugaredLogger

	// stale is set when a purge could not invalidate the cache. Lookups skip
	// the cache until a later bump of cacheGenKey succeeds.
	stale atomic.Bool
}

func NewCached(next Store, rdb redis.Cmdable, ttl time.Duration, logger *zap.SugaredLogger) *Cached {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Cached{next: next, redis: rdb, ttl: ttl, logger: logger}
}

func cacheKey(gen int64, ownerID, date string) string {
	return fmt.Sprintf("word:%d:%s:%s", gen, ownerID, date)
}

// generation returns the cache generation to read and write under. ok is
// false when the cache must be bypassed.
func (c *Cached) generation(ctx context.Context) (int64, bool) {
	if c.stale.Load() {
		if err := c.invalidate(ctx); err != nil {
			c.logger.Warnw("word cache still stale after purge", "error", err)
			return 0, false
		}
	}

	gen, err := c.redis.Get(ctx, cacheGenKey).Int64()
	switch {
	case err == nil:
		return gen, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		c.logger.Warnw("failed to read word cache generation", "error", err)
		return 0, false
	}
}

func (c *Cached) invalidate(ctx context.Context) error {
	if err := c.redis.Incr(ctx, cacheGenKey).Err(); err != nil {
		c.stale.Store(true)
		return err
	}
	c.stale.Store(false)
	return nil
}

func (c *Cached) Insert(ctx context.Context, w models.Word) (string, error) {
	id, err := c.next.Insert(ctx, w)
	if err != nil {
		return "", err
	}

	// Drop a cached entry for the same slot, if any
	if gen, ok := c.generation(ctx); ok {
		key := cacheKey(gen, w.OwnerID, w.CreatedAt)
		if err := c.redis.Del(ctx, key).Err(); err != nil {
			c.logger.Warnw("failed to drop cached word", "key", key, "error", err)
		}
	}

	return id, nil
}

func (c *Cached) FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error) {
	// The generation is pinned before the backend read. A purge that lands in
	// between moves readers to a new generation, so the write below is never
	// served.
	gen, ok := c.generation(ctx)
	if !ok {
		return c.next.FindByOwnerAndDate(ctx, ownerID, date)
	}
	key := cacheKey(gen, ownerID, date)

	cached, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var w models.Word
		if err := json.Unmarshal(cached, &w); err == nil {
			return w, true, nil
		}
		c.logger.Warnw("discarding undecodable cached word", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("failed to read cached word", "key", key, "error", err)
	}

	w, found, err := c.next.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil || !found {
		return w, found, err
	}

	wordJSON, err := json.Marshal(w)
	if err != nil {
		c.logger.Warnw("failed to marshal word for cache", "key", key, "error", err)
		return w, true, nil
	}
	if err := c.redis.Set(ctx, key, wordJSON, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to cache word", "key", key, "error", err)
	}

	return w, true, nil
}

// DeleteAll purges the wrapped store and then invalidates the cache. A failed
// invalidation is returned so the caller does not report a clean purge; this
// process keeps bypassing the cache until it can invalidate it.
func (c *Cached) DeleteAll(ctx context.Context) error {
	if err := c.next.DeleteAll(ctx); err != nil {
		return err
	}

	if err := c.invalidate(ctx); err != nil {
		c.logger.Errorw("failed to invalidate word cache after purge", "error", err)
		return storageErr("invalidate word cache", err)
	}

	return nil
}

func (c *Cached) Ping(ctx context.Context) error {
	if err := c.redis.Ping(ctx).Err(); err != nil {
		c.logger.Warnw("word cache unreachable", "error", err)
	}
	return c.next.Ping(ctx)
}
