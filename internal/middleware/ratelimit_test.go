package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCounterStore is an in-memory CounterStore.
type fakeCounterStore struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (s *fakeCounterStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return redis.NewIntResult(0, s.err)
	}
	s.counts[key]++
	return redis.NewIntResult(s.counts[key], nil)
}

func (s *fakeCounterStore) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func fixedKey(r *http.Request) string { return "test-key" }

func TestRateLimiter_Middleware_NilRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, 10, time.Hour, "test", fixedKey)
	handler := limiter.Middleware(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("expected status OK, got %d", rr.Code)
	}
}

func TestRateLimiter_Redis_FixedWindow(t *testing.T) {
	store := newFakeCounterStore()
	handler := NewRateLimiter(store, 2, time.Hour, "test", fixedKey).Middleware(okHandler())

	var codes []int
	var remaining []string
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/ideas/preview", nil))
		codes = append(codes, rr.Code)
		remaining = append(remaining, rr.Header().Get("X-RateLimit-Remaining"))
		if i == 2 {
			if rr.Header().Get("Retry-After") == "" {
				t.Error("expected Retry-After on rejection")
			}
			if !strings.Contains(rr.Body.String(), "Rate limit exceeded") {
				t.Errorf("unexpected body %q", rr.Body.String())
			}
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
	if strings.Join(remaining, ",") != "1,0,0" {
		t.Errorf("unexpected remaining sequence %v", remaining)
	}

	if len(store.expires) != 1 {
		t.Fatalf("expected expiry set once, got %d", len(store.expires))
	}
	for key, ttl := range store.expires {
		if !strings.HasPrefix(key, "test:test-key:") {
			t.Errorf("unexpected key %q", key)
		}
		if ttl != time.Hour {
			t.Errorf("expected window ttl, got %v", ttl)
		}
	}
}

func TestRateLimiter_RedisError_FallsBackToLocal(t *testing.T) {
	store := newFakeCounterStore()
	store.err = errors.New("connection refused")
	handler := NewRateLimiter(store, 1, time.Hour, "test", fixedKey).Middleware(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected local limiter to reject, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "3600" {
		t.Errorf("expected Retry-After 3600, got %q", rr.Header().Get("Retry-After"))
	}
}

func TestRateLimiter_LocalKeysAreIndependent(t *testing.T) {
	handler := NewRateLimiter(nil, 1, time.Hour, "test", nil).Middleware(okHandler())

	for _, ip := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = ip
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("%s: expected first request allowed, got %d", ip, rr.Code)
		}
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	handler := NewRateLimiter(nil, 0, time.Minute, "test", fixedKey).Middleware(okHandler())

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected disabled limiter to pass, got %d", rr.Code)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{
			name:     "X-Forwarded-For Single",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "X-Forwarded-For Multiple",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "X-Real-IP",
			headers:  map[string]string{"X-Real-IP": "10.0.0.2"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.2",
		},
		{
			name:     "XFF Preference over X-Real-IP",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1", "X-Real-IP": "10.0.0.2"},
			remote:   "192.168.1.1:1234",
			expected: "10.0.0.1",
		},
		{
			name:     "No Headers",
			headers:  map[string]string{},
			remote:   "192.168.1.1:1234",
			expected: "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remote

			ip := GetClientIP(req)
			if ip != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, ip)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTooManyRequests, "Rate limit exceeded")

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}
	if body := rr.Body.String(); body == "" || body == "{}\n" {
		t.Fatalf("expected JSON body, got %q", body)
	}
}
