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

// semanticScholarAPIBase is the Semantic Scholar Graph paper endpoint.
// Declared as a var so tests can substitute an httptest server.
var semanticScholarAPIBase = "https://api.semanticscholar.org/graph/v1/paper"

// SemanticScholar looks up citation counts in the Semantic Scholar Graph
// API. Unlike the DOI-keyed providers it accepts the arXiv ID directly,
// so it works for papers with no DOI.
type SemanticScholar struct {
	Client    *http.Client
	Gate      *ratelimit.Gate
	APIKey    string
	UserAgent string
	Log       zerolog.Logger
}

// Name returns the provider identifier.
func (s *SemanticScholar) Name() string { return SourceSemanticScholar }

// FetchCount retrieves the citation count for the paper, addressed by
// arXiv ID when present and by DOI otherwise.
func (s *SemanticScholar) FetchCount(ctx context.Context, paper types.Paper) types.CitationObservation {
	var id string
	switch {
	case paper.ArxivID != "":
		id = "arXiv:" + paper.ArxivID
	case paper.HasDOI():
		id = "DOI:" + paper.DOI
	default:
		return failure(s.Name(), paper, types.StatusMissingIdentifier, "paper has neither arXiv ID nor DOI")
	}

	if err := s.Gate.Acquire(ctx, s.Name()); err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("rate-limit wait: %v", err))
	}

	reqURL := semanticScholarAPIBase + "/" + url.PathEscape(id) + "?fields=citationCount"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("creating request: %v", err))
	}
	req.Header.Set("User-Agent", s.UserAgent)
	if s.APIKey != "" {
		req.Header.Set("x-api-key", s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("request: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// The graph does not index this paper: zero citations known.
		return success(s.Name(), paper, 0)
	case resp.StatusCode == http.StatusTooManyRequests:
		return failure(s.Name(), paper, types.StatusRateLimited, "HTTP 429")
	case resp.StatusCode != http.StatusOK:
		return failure(s.Name(), paper, types.StatusProviderUnavailable, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	var body struct {
		PaperID       string `json:"paperId"`
		CitationCount *int   `json:"citationCount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return failure(s.Name(), paper, types.StatusParseFailure, fmt.Sprintf("decoding response: %v", err))
	}
	if body.CitationCount == nil || *body.CitationCount < 0 {
		return failure(s.Name(), paper, types.StatusParseFailure, "response has no citationCount")
	}

	count := *body.CitationCount
	s.Log.Debug().Str("id", id).Int("count", count).Msg("semantic scholar lookup")
	return success(s.Name(), paper, count)
}
