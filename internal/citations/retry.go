// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// WithRetry wraps src so that provider-unavailable observations are
// retried with doubling backoff. The clients themselves never retry;
// resilience is layered above the client boundary, separate from the
// mandatory rate-limit delay. Other failure statuses (missing
// identifier, parse failure, 429) pass through unchanged: retrying
// those cannot help.
func WithRetry(src Source, attempts int, baseDelay time.Duration) Source {
	if attempts <= 0 {
		return src
	}
	if baseDelay <= 0 {
		baseDelay = 5 * time.Second
	}
	return &retrySource{inner: src, attempts: attempts, baseDelay: baseDelay}
}

type retrySource struct {
	inner     Source
	attempts  int
	baseDelay time.Duration
}

func (r *retrySource) Name() string { return r.inner.Name() }

func (r *retrySource) FetchCount(ctx context.Context, paper types.Paper) types.CitationObservation {
	obs := r.inner.FetchCount(ctx, paper)

	delay := r.baseDelay
	for attempt := 0; attempt < r.attempts; attempt++ {
		if obs.Status != types.StatusProviderUnavailable {
			return obs
		}

		select {
		case <-ctx.Done():
			return obs
		case <-time.After(delay):
		}
		delay *= 2

		obs = r.inner.FetchCount(ctx, paper)
	}
	return obs
}
