package httpkit

import (
	"net/http"
	"time"

	"langdetect/internal/platform/config"
	"langdetect/internal/platform/net/middleware"
)

// StackOptions tunes the api middleware chain
type StackOptions struct {
	CORS      middleware.CORSOptions
	RateLimit middleware.RateLimitOptions
	Slow      time.Duration
	Observe   middleware.Observer
}

// StackFromConfig reads API_* settings, e.g. API_RATE_RPS=20 API_CORS_ORIGINS=https://a.example
func StackFromConfig(cfg config.Conf) StackOptions {
	c := cfg.Prefix("API_")
	return StackOptions{
		CORS: middleware.CORSOptions{
			AllowedOrigins: c.MayCSV("CORS_ORIGINS", nil),
			MaxAge:         c.MayInt("CORS_MAX_AGE", 300),
		},
		RateLimit: middleware.RateLimitOptions{
			RPS:   c.MayFloat64("RATE_RPS", 0),
			Burst: c.MayInt("RATE_BURST", 0),
			TTL:   c.MayDuration("RATE_TTL", 10*time.Minute),
		},
		Slow: c.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	}
}

// CommonStack is the chain mounted in front of every versioned route
// ids and recovery first, then access log, cors and the rate limiter
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := middleware.Defaults()
	return append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Observe: o.Observe}),
		middleware.CORS(o.CORS),
		middleware.RateLimit(o.RateLimit),
		middleware.StripSlashes(),
	)
}
