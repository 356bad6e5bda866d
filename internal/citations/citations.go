// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations looks up citation counts for papers across several
// independent providers and reconciles the results into one figure per
// paper. Each provider client implements the Source interface; failures
// are returned as observations, never as errors, so the aggregator can
// work with whatever subset of providers answered.
package citations

import (
	"context"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Provider names, also used as rate-limit gate keys.
const (
	SourceOpenCitations   = "opencitations"
	SourceCrossRef        = "crossref"
	SourceSemanticScholar = "semantic_scholar"
)

// Source fetches a raw citation count for one paper from one provider.
// Implementations respect their provider's rate limit and never return
// an error: every outcome, including network failure, is an observation.
type Source interface {
	Name() string
	FetchCount(ctx context.Context, paper types.Paper) types.CitationObservation
}

// success builds an ok observation for a count.
func success(source string, paper types.Paper, count int) types.CitationObservation {
	return types.CitationObservation{
		Source:    source,
		ArxivID:   paper.ArxivID,
		DOI:       paper.DOI,
		Count:     count,
		FetchedAt: time.Now().UTC(),
		Status:    types.StatusOK,
	}
}

// failure builds an observation recording why no count was obtained.
func failure(source string, paper types.Paper, status types.ObservationStatus, detail string) types.CitationObservation {
	return types.CitationObservation{
		Source:    source,
		ArxivID:   paper.ArxivID,
		DOI:       paper.DOI,
		FetchedAt: time.Now().UTC(),
		Status:    status,
		Detail:    detail,
	}
}
