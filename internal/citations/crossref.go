// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-scout/internal/ratelimit"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// crossRefAPIBase is the CrossRef works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossRefAPIBase = "https://api.crossref.org/works"

// CrossRef looks up the is-referenced-by-count of a work by DOI.
type CrossRef struct {
	Client *http.Client
	Gate   *ratelimit.Gate
	// MailTo is sent as the mailto parameter for polite-pool access.
	MailTo    string
	UserAgent string
	Log       zerolog.Logger
}

// Name returns the provider identifier.
func (s *CrossRef) Name() string { return SourceCrossRef }

// FetchCount retrieves the citation count for paper's DOI. A paper
// without a DOI yields a missing-identifier observation without touching
// the gate or the network.
func (s *CrossRef) FetchCount(ctx context.Context, paper types.Paper) types.CitationObservation {
	if !paper.HasDOI() {
		return failure(s.Name(), paper, types.StatusMissingIdentifier, "paper has no DOI")
	}

	if err := s.Gate.Acquire(ctx, s.Name()); err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("rate-limit wait: %v", err))
	}

	reqURL := crossRefAPIBase + "/" + url.PathEscape(paper.DOI)
	if s.MailTo != "" {
		reqURL += "?mailto=" + url.QueryEscape(s.MailTo)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("creating request: %v", err))
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("request: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return failure(s.Name(), paper, types.StatusRateLimited, "HTTP 429")
	case resp.StatusCode != http.StatusOK:
		// Includes 404: CrossRef does not know the DOI, so it has no
		// count to contribute.
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	var body struct {
		Message struct {
			IsReferencedByCount *int `json:"is-referenced-by-count"`
		} `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return failure(s.Name(), paper, types.StatusParseFailure, fmt.Sprintf("decoding response: %v", err))
	}
	if body.Message.IsReferencedByCount == nil || *body.Message.IsReferencedByCount < 0 {
		return failure(s.Name(), paper, types.StatusParseFailure, "response has no is-referenced-by-count")
	}

	count := *body.Message.IsReferencedByCount
	s.Log.Debug().Str("doi", paper.DOI).Int("count", count).Msg("crossref lookup")
	return success(s.Name(), paper, count)
}
