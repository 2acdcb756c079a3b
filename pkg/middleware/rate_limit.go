package middleware

import (
	"net"
	"net/http"
	"staybook/pkg/auth"
	"staybook/pkg/logger"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(r *http.Request) string

type limiterEntry struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// CallerRateLimiter keeps one token bucket per caller. Buckets idle for
// longer than idleTTL are evicted.
type CallerRateLimiter struct {
	limiters sync.Map // map[string]*limiterEntry
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	keyFunc  KeyFunc
	log      *logger.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewCallerRateLimiter(rps float64, burst int, keyFunc KeyFunc, log *logger.Logger) *CallerRateLimiter {
	if burst <= 0 {
		burst = 5
	}
	if keyFunc == nil {
		keyFunc = CallerKey
	}

	rl := &CallerRateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 10 * time.Minute,
		keyFunc: keyFunc,
		log:     log,
		stopCh:  make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

func (rl *CallerRateLimiter) getLimiter(key string) *limiterEntry {
	if v, ok := rl.limiters.Load(key); ok {
		return v.(*limiterEntry)
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rl.rps, rl.burst)}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry)
}

func (rl *CallerRateLimiter) Allow(key string) bool {
	entry := rl.getLimiter(key)
	entry.mu.Lock()
	entry.lastSeen = time.Now()
	entry.mu.Unlock()
	return entry.limiter.Allow()
}

func (rl *CallerRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *CallerRateLimiter) evictIdle(now time.Time) {
	rl.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := now.Sub(entry.lastSeen) > rl.idleTTL
		entry.mu.Unlock()
		if idle {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *CallerRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// RateLimit rejects callers that exhausted their bucket with 429.
// A non-positive rate disables limiting.
func RateLimit(rl *CallerRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.rps <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := rl.keyFunc(r)
			if !rl.Allow(key) {
				rl.log.Ctx(r.Context()).Warn("Rate limit exceeded",
					"caller", key,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", "1")
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CallerKey counts authenticated users by id and anonymous callers by IP.
func CallerKey(r *http.Request) string {
	if userID := auth.UserID(r.Context()); userID != "" {
		return "user:" + userID
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
