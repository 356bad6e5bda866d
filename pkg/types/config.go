package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the arXiv search boundary.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// CitationsConfig holds settings for the citation lookup engine.
type CitationsConfig struct {
	HTTPConfig `yaml:",inline"`

	// OpenCitationsInterval is the minimum delay between consecutive
	// OpenCitations requests (default 2s).
	OpenCitationsInterval time.Duration `json:"opencitations_interval" yaml:"opencitations_interval"`

	// CrossRefInterval is the minimum delay between consecutive CrossRef
	// requests (default 2s).
	CrossRefInterval time.Duration `json:"crossref_interval" yaml:"crossref_interval"`

	// SemanticScholarInterval is the minimum delay between consecutive
	// Semantic Scholar requests (default 3s; the unauthenticated quota
	// is the tightest of the three providers).
	SemanticScholarInterval time.Duration `json:"semantic_scholar_interval" yaml:"semantic_scholar_interval"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// CrossRefMailTo is an optional contact address sent as the mailto
	// parameter for CrossRef polite-pool access.
	CrossRefMailTo string `json:"crossref_mailto,omitempty" yaml:"crossref_mailto,omitempty"`

	// OpenCitationsToken is an optional OpenCitations access token.
	OpenCitationsToken string `json:"opencitations_token,omitempty" yaml:"opencitations_token,omitempty"`

	// CachePath is the SQLite citation cache file. Empty disables caching.
	CachePath string `json:"cache_path,omitempty" yaml:"cache_path,omitempty"`

	// CacheMaxAge bounds how old a cached observation may be before it is
	// refetched (default 7 days; 0 means never expire).
	CacheMaxAge time.Duration `json:"cache_max_age" yaml:"cache_max_age"`

	// RetryAttempts is the number of extra attempts made above the client
	// boundary when a provider is unavailable (default 0: no retries).
	RetryAttempts int `json:"retry_attempts" yaml:"retry_attempts"`

	// RetryBaseDelay is the backoff base for those retries (default 5s,
	// doubled per attempt). Distinct from the mandatory rate-limit delay.
	RetryBaseDelay time.Duration `json:"retry_base_delay" yaml:"retry_base_delay"`
}

// DiscoveryConfig holds settings for the historical most-cited scan.
type DiscoveryConfig struct {
	// WindowStart is the beginning of the historical window. The default
	// (1990-01-01) assumes enough time has passed for citations to
	// accumulate; recent papers are systematically under-represented.
	WindowStart time.Time `json:"window_start" yaml:"window_start"`

	// WindowEnd is the end of the historical window (default 2020-12-31).
	WindowEnd time.Time `json:"window_end" yaml:"window_end"`

	// Limit is how many ranked results to keep (default 10).
	Limit int `json:"limit" yaml:"limit"`

	// ScanCap bounds how many candidates are aggregated per scan
	// (default 50). Each candidate costs up to three rate-limited calls.
	ScanCap int `json:"scan_cap" yaml:"scan_cap"`

	// Concurrency is the number of papers aggregated in parallel
	// (default 1). Per-provider dispatch stays serialized by the gate.
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// RequireCitations drops candidates with no corroborated count
	// instead of ranking them with count 0.
	RequireCitations bool `json:"require_citations" yaml:"require_citations"`
}
