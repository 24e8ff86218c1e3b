package middleware

import (
	"calendar-event-backend/config"
	"calendar-event-backend/pkg/log"
	"calendar-event-backend/pkg/metrics"
)

type Middleware struct {
	l           log.Logger
	cors        config.CORSConfig
	metrics     *metrics.Metrics
	rateLimiter *rateLimiter
}

// New creates the middleware set. A nil metrics disables the Metrics middleware;
// a non-positive rate disables RateLimit.
func New(l log.Logger, cors config.CORSConfig, m *metrics.Metrics, rateLimit config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:       l,
		cors:    cors,
		metrics: m,
	}
	if rateLimit.Enabled && rateLimit.PerMinute > 0 {
		mw.rateLimiter = newRateLimiter(rateLimit.PerMinute)
	}
	return mw
}
