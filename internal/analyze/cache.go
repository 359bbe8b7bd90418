// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analyze

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/mta/internal/platform/constants"
)

// Cache stores recognized page text keyed by image checksum.
type Cache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (text string, ok bool, err error)
	Set(ctx context.Context, key, text string) error
}

// # Redis Cache

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	text, err := c.client.Get(ctx, constants.RedisPrefixPageText+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, text string) error {
	return c.client.Set(ctx, constants.RedisPrefixPageText+key, text, c.ttl).Err()
}

// # Cached Recognizer

// CachedRecognizer skips OCR for pages recognized before. Cache failures
// are logged and never fail a page.
type CachedRecognizer struct {
	next   Recognizer
	cache  Cache
	logger *slog.Logger
}

func NewCachedRecognizer(next Recognizer, cache Cache, logger *slog.Logger) *CachedRecognizer {
	return &CachedRecognizer{next: next, cache: cache, logger: logger}
}

func (r *CachedRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	key := Checksum(image)

	text, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("ocr_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}
	if ok {
		r.logger.Debug("ocr_cache_hit", slog.String("key", key))
		return text, nil
	}

	text, err = r.next.Recognize(ctx, image)
	if err != nil {
		return "", err
	}

	if err := r.cache.Set(ctx, key, text); err != nil {
		r.logger.Warn("ocr_cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
	return text, nil
}

// Checksum returns the hex sha256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
