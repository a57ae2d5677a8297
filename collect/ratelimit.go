package collect

import (
	"context"

	"github.com/fwojciec/lauds"
	"golang.org/x/time/rate"
)

var _ lauds.RateLimiter = (*Limiter)(nil)

// Limiter spaces out requests to the breviary site using a token bucket.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second with a
// burst of 1. A non-positive rps disables limiting.
func NewLimiter(rps float64) *Limiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &Limiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the rate limit allows a request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
