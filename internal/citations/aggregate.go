// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Policy reconciles two or more successful counts into one figure. It is
// only consulted at tier multi-source; counts is never empty.
type Policy func(counts []int) int

// MaxOfSuccessful is the default policy: take the highest count on the
// grounds that citation databases under-count far more often than they
// over-count, so the maximum is the best available estimate.
func MaxOfSuccessful(counts []int) int {
	max := counts[0]
	for _, c := range counts[1:] {
		if c > max {
			max = c
		}
	}
	return max
}

// Aggregator fans a paper out to every configured source and reconciles
// the observations into one AggregatedCitation. It owns no network state
// of its own; the sources do the talking.
type Aggregator struct {
	// Sources are attempted in order; observations keep this order
	// regardless of which network call finishes first.
	Sources []Source

	// Policy reconciles multi-source counts. Nil means MaxOfSuccessful.
	Policy Policy

	Log zerolog.Logger
}

// Aggregate queries all sources concurrently and reconciles their
// observations. It never fails: a paper for which every source failed
// still yields a valid result at confidence tier none.
func (a *Aggregator) Aggregate(ctx context.Context, paper types.Paper) types.AggregatedCitation {
	observations := make([]types.CitationObservation, len(a.Sources))

	var wg sync.WaitGroup
	for i, src := range a.Sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			observations[i] = src.FetchCount(ctx, paper)
		}(i, src)
	}
	wg.Wait()

	var counts []int
	for _, obs := range observations {
		if obs.Status.Success() {
			counts = append(counts, obs.Count)
		} else {
			a.Log.Debug().
				Str("source", obs.Source).
				Str("arxiv_id", obs.ArxivID).
				Str("status", string(obs.Status)).
				Str("detail", obs.Detail).
				Msg("source failed")
		}
	}

	agg := types.AggregatedCitation{
		ArxivID:      paper.ArxivID,
		Observations: observations,
	}

	switch len(counts) {
	case 0:
		agg.Confidence = types.TierNone
	case 1:
		agg.Confidence = types.TierSingleSource
		agg.Count = counts[0]
	default:
		agg.Confidence = types.TierMultiSource
		policy := a.Policy
		if policy == nil {
			policy = MaxOfSuccessful
		}
		agg.Count = policy(counts)
	}

	a.Log.Debug().
		Str("arxiv_id", paper.ArxivID).
		Int("count", agg.Count).
		Str("confidence", string(agg.Confidence)).
		Msg("aggregated")
	return agg
}
