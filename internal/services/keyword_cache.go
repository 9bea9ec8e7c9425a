package services

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"github.com/withme-travel/withme/internal/logging"
	"github.com/withme-travel/withme/internal/metrics"
)

const keywordCachePrefix = "keywords:"

// KeywordStore is the part of the Redis client the keyword cache needs.
type KeywordStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// KeywordCache memoizes keyword extraction per description. It fails open:
// a missing store or a Redis error reads as a miss and writes are dropped.
// A ttl of zero or less disables the cache; entries always expire.
type KeywordCache struct {
	store  KeywordStore
	ttl    time.Duration
	logger *logging.Logger
}

func NewKeywordCache(store KeywordStore, ttl time.Duration, logger *logging.Logger) *KeywordCache {
	if logger == nil {
		logger = logging.Default
	}
	if ttl <= 0 {
		store = nil
	}
	return &KeywordCache{store: store, ttl: ttl, logger: logger}
}

func keywordCacheKey(text string, max int) string {
	sum := blake2b.Sum256([]byte(strconv.Itoa(max) + "|" + text))
	return keywordCachePrefix + hex.EncodeToString(sum[:])
}

func (c *KeywordCache) Get(ctx context.Context, text string, max int) ([]string, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}

	raw, err := c.store.Get(ctx, keywordCacheKey(text, max)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordKeywordCache(metrics.CacheMiss)
		return nil, false
	}
	if err != nil {
		metrics.RecordKeywordCache(metrics.CacheError)
		c.logger.Warn("Keyword cache read failed", map[string]interface{}{"error": err})
		return nil, false
	}

	var keywords []string
	if err := json.Unmarshal(raw, &keywords); err != nil {
		metrics.RecordKeywordCache(metrics.CacheError)
		c.logger.Warn("Keyword cache entry is corrupt", map[string]interface{}{"error": err})
		return nil, false
	}

	metrics.RecordKeywordCache(metrics.CacheHit)
	return keywords, true
}

func (c *KeywordCache) Set(ctx context.Context, text string, max int, keywords []string) {
	if c == nil || c.store == nil {
		return
	}
	if keywords == nil {
		keywords = []string{}
	}

	raw, err := json.Marshal(keywords)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, keywordCacheKey(text, max), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Keyword cache write failed", map[string]interface{}{"error": err})
	}
}
