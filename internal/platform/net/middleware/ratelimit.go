package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	perr "langdetect/internal/platform/errors"
	pnet "langdetect/internal/platform/net"
	phttp "langdetect/internal/platform/net/http"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures the per-client token bucket
type RateLimitOptions struct {
	// RPS is the sustained rate per client ip, <= 0 disables limiting
	RPS float64
	// Burst is the bucket size, defaults to max(1, ceil(RPS))
	Burst int
	// TTL evicts limiters idle for longer than TTL, defaults to 10m
	TTL time.Duration
}

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiterSet struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterSet(o RateLimitOptions) *limiterSet {
	burst := o.Burst
	if burst <= 0 {
		burst = max(1, int(math.Ceil(o.RPS)))
	}
	ttl := o.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &limiterSet{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(o.RPS),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

// allow charges one token for key
func (s *limiterSet) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		for k, v := range s.visitors {
			if now.Sub(v.seen) >= s.ttl {
				delete(s.visitors, k)
			}
		}
		s.lastSweep = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[key] = v
	}
	v.seen = now
	return v.lim.AllowN(now, 1)
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// retryAfter is the whole seconds until one token refills
func (s *limiterSet) retryAfter() string {
	secs := int(math.Ceil(1 / float64(s.limit)))
	return strconv.Itoa(max(1, secs))
}

// RateLimit rejects clients exceeding o.RPS with a 429 envelope and Retry-After
// clients are keyed by the ip RequestContext stored, falling back to RemoteAddr
func RateLimit(o RateLimitOptions) func(http.Handler) http.Handler {
	if o.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	set := newLimiterSet(o)
	return rateLimit(set)
}

func rateLimit(set *limiterSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if set.allow(clientIP(r)) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Retry-After", set.retryAfter())
			status, body := pnet.Error(perr.TooManyf("rate limit exceeded"), pnet.RequestID(r.Context()))
			phttp.JSON(w, status, body)
		})
	}
}
