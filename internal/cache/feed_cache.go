package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/domain"
)

const feedKey = "feed:properties:recent"

// FeedCache keeps the public unfiltered property feed in Redis. Cache
// failures never surface to callers; the store remains the source of
// truth and every property write invalidates the key.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewFeedCache builds a cache instance. A nil client disables caching.
func NewFeedCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *FeedCache {
	return &FeedCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached feed and whether it was present.
func (f *FeedCache) Get(ctx context.Context) ([]domain.Property, bool) {
	if f == nil || f.client == nil || f.ttl <= 0 {
		return nil, false
	}
	payload, err := f.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			f.logger.Debug("feed cache get failed", zap.Error(err))
		}
		return nil, false
	}
	var feed []domain.Property
	if err := json.Unmarshal(payload, &feed); err != nil {
		f.logger.Debug("feed cache decode failed", zap.Error(err))
		return nil, false
	}
	return feed, true
}

// Set stores the feed with the configured TTL.
func (f *FeedCache) Set(ctx context.Context, feed []domain.Property) {
	if f == nil || f.client == nil || f.ttl <= 0 {
		return
	}
	payload, err := json.Marshal(feed)
	if err != nil {
		f.logger.Debug("feed cache encode failed", zap.Error(err))
		return
	}
	if err := f.client.Set(ctx, feedKey, payload, f.ttl).Err(); err != nil {
		f.logger.Debug("feed cache set failed", zap.Error(err))
	}
}

// Invalidate drops the cached feed after a property write.
func (f *FeedCache) Invalidate(ctx context.Context) {
	if f == nil || f.client == nil {
		return
	}
	if err := f.client.Del(ctx, feedKey).Err(); err != nil {
		f.logger.Debug("feed cache invalidate failed", zap.Error(err))
	}
}
