package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"linkvault/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	rateLimiterSweepInterval = time.Minute
	rateLimiterIdleTTL       = 10 * time.Minute
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	r       rate.Limit
	b       int
	logger  *slog.Logger
	now     func() time.Time
	done    chan struct{}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterParams holds dependencies for IPRateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIPRateLimiter builds the limiter from the analytics settings and sweeps idle
// clients while the application runs. A non-positive rate disables limiting.
func NewIPRateLimiter(params RateLimiterParams) *IPRateLimiter {
	limit := rate.Limit(params.Config.Analytics.RateLimit)
	if params.Config.Analytics.RateLimit <= 0 {
		limit = rate.Inf
	}
	l := newIPRateLimiter(limit, params.Config.Analytics.RateBurst, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go l.sweepLoop(rateLimiterSweepInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			close(l.done)

			return nil
		},
	})

	return l
}

func newIPRateLimiter(r rate.Limit, b int, logger *slog.Logger) *IPRateLimiter {
	return &IPRateLimiter{
		clients: make(map[string]*clientLimiter),
		r:       r,
		b:       max(b, 1),
		logger:  logger,
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

// Allow consumes one token of ip.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	client, ok := l.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// Limit rejects requests of clients that ran out of tokens with 429.
func (l *IPRateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.Allow(c.RealIP()) {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
		}

		return next(c)
	}
}

// Sweep forgets clients idle for longer than idle and returns how many were removed.
func (l *IPRateLimiter) Sweep(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for ip, client := range l.clients {
		if client.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
			removed++
		}
	}

	return removed
}

func (l *IPRateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			if n := l.Sweep(rateLimiterIdleTTL); n > 0 {
				l.logger.Debug("Rate limiter swept idle clients", slog.Int("count", n))
			}
		}
	}
}
