// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Searcher is the external search collaborator the discovery driver
// draws candidates from. The driver only restricts it to a date window
// and a candidate cap; query construction lives with the implementation.
type Searcher interface {
	Search(ctx context.Context, from, to time.Time, max int) ([]types.Paper, error)
}

// Scan yields one RankedResult per candidate, in candidate order. The
// sequence is lazy and non-restartable: each element triggers one
// Aggregate call with its full rate-limited latency, so a consumer that
// stops early also stops paying.
func Scan(ctx context.Context, candidates []types.Paper, agg *Aggregator) iter.Seq[types.RankedResult] {
	return func(yield func(types.RankedResult) bool) {
		for _, paper := range candidates {
			if ctx.Err() != nil {
				return
			}
			result := types.RankedResult{
				Paper:     paper,
				Citations: agg.Aggregate(ctx, paper),
			}
			if !yield(result) {
				return
			}
		}
	}
}

// Discover runs the historical most-cited scan: pull candidates from the
// search collaborator restricted to the configured window, aggregate
// each one, then rank by reported count descending, stable on ties so
// the search-provided order survives. Only a failure of the search
// collaborator itself is an error; candidates whose every source failed
// rank with count 0 unless cfg.RequireCitations drops them.
func Discover(ctx context.Context, searcher Searcher, agg *Aggregator, cfg types.DiscoveryConfig) ([]types.RankedResult, error) {
	scanCap := cfg.ScanCap
	if scanCap <= 0 {
		scanCap = 50
	}

	candidates, err := searcher.Search(ctx, cfg.WindowStart, cfg.WindowEnd, scanCap)
	if err != nil {
		return nil, fmt.Errorf("searching candidates: %w", err)
	}
	if len(candidates) > scanCap {
		candidates = candidates[:scanCap]
	}

	var results []types.RankedResult
	if cfg.Concurrency > 1 {
		// Indexed writes keep the output in candidate order no matter
		// which aggregation finishes first.
		results = make([]types.RankedResult, len(candidates))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Concurrency)
		for i, paper := range candidates {
			g.Go(func() error {
				results[i] = types.RankedResult{
					Paper:     paper,
					Citations: agg.Aggregate(gctx, paper),
				}
				return gctx.Err()
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for result := range Scan(ctx, candidates, agg) {
			results = append(results, result)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return Rank(results, cfg.Limit, cfg.RequireCitations), nil
}

// Rank orders results by reported count descending, preserving relative
// order on ties, and truncates to limit (non-positive limit keeps all).
// With requireCitations set, tier-none results are dropped first.
func Rank(results []types.RankedResult, limit int, requireCitations bool) []types.RankedResult {
	ranked := make([]types.RankedResult, 0, len(results))
	for _, r := range results {
		if requireCitations && r.Citations.Confidence == types.TierNone {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Citations.Count > ranked[j].Citations.Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
