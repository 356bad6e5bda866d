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

// openCitationsAPIBase is the OpenCitations index endpoint. Declared as a
// var so tests can substitute an httptest server.
var openCitationsAPIBase = "https://opencitations.net/index/api/v1"

// OpenCitations looks up citation counts in the OpenCitations index.
// Lookups are keyed by DOI; papers without one are skipped locally.
type OpenCitations struct {
	Client *http.Client
	Gate   *ratelimit.Gate
	// AccessToken is sent in the authorization header when set.
	AccessToken string
	UserAgent   string
	Log         zerolog.Logger
}

// Name returns the provider identifier.
func (s *OpenCitations) Name() string { return SourceOpenCitations }

// FetchCount retrieves the citation count for paper's DOI. A paper
// without a DOI yields a missing-identifier observation without touching
// the gate or the network.
func (s *OpenCitations) FetchCount(ctx context.Context, paper types.Paper) types.CitationObservation {
	if !paper.HasDOI() {
		return failure(s.Name(), paper, types.StatusMissingIdentifier, "paper has no DOI")
	}

	if err := s.Gate.Acquire(ctx, s.Name()); err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("rate-limit wait: %v", err))
	}

	reqURL := openCitationsAPIBase + "/citation-count/" + url.PathEscape(paper.DOI)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("creating request: %v", err))
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Accept", "application/json")
	if s.AccessToken != "" {
		req.Header.Set("Authorization", s.AccessToken)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("request: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// The index has never seen this DOI: zero citations, not an error.
		return success(s.Name(), paper, 0)
	case resp.StatusCode == http.StatusTooManyRequests:
		return failure(s.Name(), paper, types.StatusRateLimited, "HTTP 429")
	case resp.StatusCode != http.StatusOK:
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	// The live API returns count as a JSON string; json.Number accepts both.
	var body []struct {
		Count json.Number `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return failure(s.Name(), paper, types.StatusParseFailure, fmt.Sprintf("decoding response: %v", err))
	}
	if len(body) == 0 {
		return success(s.Name(), paper, 0)
	}

	count, err := body[0].Count.Int64()
	if err != nil || count < 0 {
		return failure(s.Name(), paper, types.StatusParseFailure, fmt.Sprintf("bad count %q", body[0].Count))
	}

	s.Log.Debug().Str("doi", paper.DOI).Int64("count", count).Msg("opencitations lookup")
	return success(s.Name(), paper, int(count))
}
