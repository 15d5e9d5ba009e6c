package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// idleBucketTTL is how long an untouched bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter. Each scope passed to
// Limit keeps its own buckets, so the auth routes and submission intake
// are limited independently for the same client.
type RateLimiter struct {
	buckets sync.Map // bucketKey -> *bucket
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type bucketKey struct {
	scope  string
	client string
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client IP within scope, with bursts
// up to perMinute. Rejected requests get 429 and a Retry-After header.
func (rl *RateLimiter) Limit(scope string, perMinute int) Middleware {
	capacity := float64(perMinute)
	retryAfter := strconv.Itoa(int(math.Ceil(60 / capacity)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bucketKey{scope: scope, client: clientIP(r)}
			if !rl.take(key, capacity) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiter) take(key bucketKey, capacity float64) bool {
	now := rl.now()
	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60,
		lastRefill: now,
	})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.dropIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) dropIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
