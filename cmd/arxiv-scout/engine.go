// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/citations"
	"github.com/pdiddy/arxiv-scout/internal/citestore"
	"github.com/pdiddy/arxiv-scout/internal/ratelimit"
	"github.com/pdiddy/arxiv-scout/internal/secrets"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "arxiv-scout/0.1 (https://github.com/pdiddy/arxiv-scout)"

	// Empirical per-provider floors; Semantic Scholar enforces the
	// tightest unauthenticated quota of the three.
	defaultOpenCitationsInterval   = 2 * time.Second
	defaultCrossRefInterval        = 2 * time.Second
	defaultSemanticScholarInterval = 3 * time.Second

	defaultCacheMaxAge = 7 * 24 * time.Hour
)

func init() {
	viper.SetDefault("search.timeout", defaultTimeout)
	viper.SetDefault("search.user_agent", defaultUserAgent)
	viper.SetDefault("search.max_results", 20)

	viper.SetDefault("citations.timeout", defaultTimeout)
	viper.SetDefault("citations.user_agent", defaultUserAgent)
	viper.SetDefault("citations.opencitations_interval", defaultOpenCitationsInterval)
	viper.SetDefault("citations.crossref_interval", defaultCrossRefInterval)
	viper.SetDefault("citations.semantic_scholar_interval", defaultSemanticScholarInterval)
	viper.SetDefault("citations.cache_path", "")
	viper.SetDefault("citations.cache_max_age", defaultCacheMaxAge)
	viper.SetDefault("citations.retry_attempts", 0)
	viper.SetDefault("citations.retry_base_delay", 5*time.Second)
}

// citationsConfig assembles the engine configuration from viper (config
// file and environment) plus loaded secrets. Secrets win over config for
// credentials so keys stay out of YAML files.
func citationsConfig() types.CitationsConfig {
	cfg := types.CitationsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("citations.timeout"),
			UserAgent: viper.GetString("citations.user_agent"),
		},
		OpenCitationsInterval:   viper.GetDuration("citations.opencitations_interval"),
		CrossRefInterval:        viper.GetDuration("citations.crossref_interval"),
		SemanticScholarInterval: viper.GetDuration("citations.semantic_scholar_interval"),
		SemanticScholarAPIKey:   viper.GetString("citations.semantic_scholar_api_key"),
		CrossRefMailTo:          viper.GetString("citations.crossref_mailto"),
		OpenCitationsToken:      viper.GetString("citations.opencitations_token"),
		CachePath:               viper.GetString("citations.cache_path"),
		CacheMaxAge:             viper.GetDuration("citations.cache_max_age"),
		RetryAttempts:           viper.GetInt("citations.retry_attempts"),
		RetryBaseDelay:          viper.GetDuration("citations.retry_base_delay"),
	}

	if v := loadedSecrets[secrets.KeySemanticScholarAPIKey]; v != "" {
		cfg.SemanticScholarAPIKey = v
	}
	if v := loadedSecrets[secrets.KeyCrossRefMailTo]; v != "" {
		cfg.CrossRefMailTo = v
	}
	if v := loadedSecrets[secrets.KeyOpenCitationsToken]; v != "" {
		cfg.OpenCitationsToken = v
	}
	return cfg
}

// newAggregator wires the gate, the three provider clients, and the
// optional cache and retry layers into an Aggregator. The returned
// cleanup closes the cache store; it is non-nil even without a cache.
func newAggregator(cfg types.CitationsConfig) (*citations.Aggregator, func(), error) {
	client := &http.Client{Timeout: cfg.Timeout}

	gate := ratelimit.NewGate()
	gate.SetInterval(citations.SourceOpenCitations, cfg.OpenCitationsInterval)
	gate.SetInterval(citations.SourceCrossRef, cfg.CrossRefInterval)
	gate.SetInterval(citations.SourceSemanticScholar, cfg.SemanticScholarInterval)

	sources := []citations.Source{
		&citations.SemanticScholar{
			Client:    client,
			Gate:      gate,
			APIKey:    cfg.SemanticScholarAPIKey,
			UserAgent: cfg.UserAgent,
			Log:       log,
		},
		&citations.OpenCitations{
			Client:      client,
			Gate:        gate,
			AccessToken: cfg.OpenCitationsToken,
			UserAgent:   cfg.UserAgent,
			Log:         log,
		},
		&citations.CrossRef{
			Client:    client,
			Gate:      gate,
			MailTo:    cfg.CrossRefMailTo,
			UserAgent: cfg.UserAgent,
			Log:       log,
		},
	}

	cleanup := func() {}
	if cfg.CachePath != "" {
		store, err := citestore.Open(cfg.CachePath, cfg.CacheMaxAge)
		if err != nil {
			return nil, nil, fmt.Errorf("opening citation cache: %w", err)
		}
		cleanup = func() { store.Close() }
		for i, src := range sources {
			sources[i] = citations.Cached(src, store)
		}
	}

	if cfg.RetryAttempts > 0 {
		for i, src := range sources {
			sources[i] = citations.WithRetry(src, cfg.RetryAttempts, cfg.RetryBaseDelay)
		}
	}

	return &citations.Aggregator{Sources: sources, Log: log}, cleanup, nil
}

// searchConfig assembles the search boundary configuration from viper.
func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		MaxResults: viper.GetInt("search.max_results"),
	}
}

// newArxivClient builds the search boundary client.
func newArxivClient(cfg types.SearchConfig) *arxiv.Client {
	return &arxiv.Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
	}
}
