package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/withme-travel/withme/internal/logging"
)

// CounterStore is the part of the Redis client the rate limiter needs.
type CounterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimiter allows limit requests per window and key. Counts live in Redis
// as fixed windows so every instance shares them; when Redis is missing or
// failing, each instance falls back to its own token bucket.
type RateLimiter struct {
	store    CounterStore
	limit    int
	window   time.Duration
	prefix   string
	keyFunc  func(*http.Request) string
	fallback *localLimiter
	logger   *logging.Logger
}

func NewRateLimiter(store CounterStore, limit int, window time.Duration, prefix string, keyFunc func(*http.Request) string) *RateLimiter {
	if keyFunc == nil {
		keyFunc = GetClientIP
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		store:    store,
		limit:    limit,
		window:   window,
		prefix:   prefix,
		keyFunc:  keyFunc,
		fallback: newLocalLimiter(limit, window),
		logger:   logging.Default,
	}
}

// NewAPIRateLimiter limits generation routes per client IP.
func NewAPIRateLimiter(store CounterStore, limit int, window time.Duration) *RateLimiter {
	return NewRateLimiter(store, limit, window, "ratelimit:api", GetClientIP)
}

// WithLogger sets the logger used to report Redis failures.
func (rl *RateLimiter) WithLogger(logger *logging.Logger) *RateLimiter {
	if logger != nil {
		rl.logger = logger
	}
	return rl
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := rl.keyFunc(r)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))

		if rl.store != nil {
			allowed, remaining, reset, err := rl.isAllowed(r.Context(), key)
			if err == nil {
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
				if !allowed {
					retryAfter := int(math.Ceil(time.Until(reset).Seconds()))
					rl.reject(w, max(retryAfter, 1))
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			rl.logger.Warn("Rate limiter falling back to local limits", map[string]interface{}{"error": err})
		}

		if !rl.fallback.allow(key) {
			rl.reject(w, rl.fallback.retryAfter())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) reject(w http.ResponseWriter, retryAfter int) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (allowed bool, remaining int, reset time.Time, err error) {
	windowStart := time.Now().Truncate(rl.window)
	reset = windowStart.Add(rl.window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.prefix, key, windowStart.Unix())

	count, err := rl.store.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, reset, err
	}
	if count == 1 {
		if err := rl.store.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			return false, 0, reset, err
		}
	}

	remaining = max(rl.limit-int(count), 0)
	return int(count) <= rl.limit, remaining, reset, nil
}

const maxLocalKeys = 10000

// localLimiter keeps one token bucket per key, refilling limit tokens per
// window.
type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    time.Duration
	burst    int
}

func newLocalLimiter(limit int, window time.Duration) *localLimiter {
	every := window
	if limit > 0 {
		every = window / time.Duration(limit)
	}
	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    every,
		burst:    max(limit, 1),
	}
}

func (l *localLimiter) allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxLocalKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Every(l.every), l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

func (l *localLimiter) retryAfter() int {
	return max(int(math.Ceil(l.every.Seconds())), 1)
}

// GetClientIP returns the first address in X-Forwarded-For, then X-Real-IP,
// then the connection's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if ip, _, err := net.SplitHostPort(first); err == nil {
			return ip
		}
		return first
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
