// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ratelimit gates outbound requests so each citation provider
// sees at most one request per configured interval, regardless of how
// many lookups are in flight.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Gate enforces a per-source minimum inter-request interval. Acquisitions
// for the same source are serialized; acquisitions for different sources
// never block each other. The zero-interval gate grants immediately,
// which is what tests substitute.
type Gate struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewGate returns a Gate with no intervals configured. Sources without a
// configured interval are not delayed.
func NewGate() *Gate {
	return &Gate{limiters: make(map[string]*rate.Limiter)}
}

// SetInterval configures the minimum delay between granted acquisitions
// for source. A non-positive interval removes the delay.
func (g *Gate) SetInterval(source string, interval time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if interval <= 0 {
		g.limiters[source] = rate.NewLimiter(rate.Inf, 1)
		return
	}
	g.limiters[source] = rate.NewLimiter(rate.Every(interval), 1)
}

// Acquire blocks until the source's interval has elapsed since the last
// granted acquisition, or until ctx is done. Release is implicit; the
// interval starts counting from the grant.
func (g *Gate) Acquire(ctx context.Context, source string) error {
	g.mu.Lock()
	limiter, ok := g.limiters[source]
	if !ok {
		limiter = rate.NewLimiter(rate.Inf, 1)
		g.limiters[source] = limiter
	}
	g.mu.Unlock()

	return limiter.Wait(ctx)
}
