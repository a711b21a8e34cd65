package twitter

import (
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-stealth/ratelimit"
)

// Throttle tracks which endpoints Twitter has reported as exhausted, so
// callers can hold off until the window resets. It never blocks or retries
// requests itself.
type Throttle struct {
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// NewThrottle creates a Throttle. A zero cfg uses ratelimit.DefaultConfig and
// a nil logger uses slog.Default().
func NewThrottle(cfg ratelimit.Config, logger *slog.Logger) *Throttle {
	if cfg.RequestsPerWindow == 0 {
		cfg = ratelimit.DefaultConfig
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Throttle{
		limiter: ratelimit.NewLimiter(cfg),
		logger:  logger,
	}
}

// Observe records the rate-limit status reported for endpoint.
func (t *Throttle) Observe(endpoint string, rl RateLimitStatus) {
	if !rl.Exhausted() {
		return
	}
	reset := rl.ResetAt()
	if !reset.After(time.Now()) {
		return
	}
	t.limiter.MarkRateLimited(endpoint, reset)
	t.logger.Info("rate limit exhausted",
		slog.String("endpoint", endpoint),
		slog.Int("limit", rl.Limit),
		slog.Time("reset", reset))
}

// Limited reports whether endpoint is known to be exhausted.
func (t *Throttle) Limited(endpoint string) bool {
	return t.limiter.IsRateLimited(endpoint)
}

// AvailableAt returns when endpoint can be called again.
func (t *Throttle) AvailableAt(endpoint string) time.Time {
	return t.limiter.AvailableAt(endpoint)
}

// Allow reports whether a call to endpoint fits the client-side budget.
func (t *Throttle) Allow(endpoint string) bool {
	return t.limiter.Allow(endpoint)
}
