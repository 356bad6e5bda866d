// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// CacheStore persists successful observations between invocations.
// Implemented by citestore.Store.
type CacheStore interface {
	Get(source, arxivID string) (types.CitationObservation, bool, error)
	Put(obs types.CitationObservation) error
}

// Cached wraps src with a read-through cache. Hits skip the rate-limit
// wait and the network entirely; only successful observations are
// written back, so a transient provider failure is retried on the next
// invocation. Store errors degrade to uncached fetches.
func Cached(src Source, store CacheStore) Source {
	if store == nil {
		return src
	}
	return &cachedSource{inner: src, store: store}
}

type cachedSource struct {
	inner Source
	store CacheStore
}

func (c *cachedSource) Name() string { return c.inner.Name() }

func (c *cachedSource) FetchCount(ctx context.Context, paper types.Paper) types.CitationObservation {
	if obs, ok, err := c.store.Get(c.inner.Name(), paper.ArxivID); err == nil && ok {
		return obs
	}

	obs := c.inner.FetchCount(ctx, paper)
	if obs.Status.Success() {
		// Best effort; a failed write only costs a refetch next time.
		_ = c.store.Put(obs)
	}
	return obs
}
