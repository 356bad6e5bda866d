// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ObservationStatus classifies the outcome of one provider lookup.
type ObservationStatus string

const (
	// StatusOK marks a successful lookup with a parseable count.
	StatusOK ObservationStatus = "ok"

	// StatusMissingIdentifier marks a provider skipped because the paper
	// lacks the identifier that provider requires (no DOI). No network
	// call is made for these.
	StatusMissingIdentifier ObservationStatus = "missing-identifier"

	// StatusProviderUnavailable marks a network error, timeout, or
	// non-success HTTP response.
	StatusProviderUnavailable ObservationStatus = "provider-unavailable"

	// StatusParseFailure marks a response that arrived but could not be
	// decoded into a citation count.
	StatusParseFailure ObservationStatus = "parse-failure"

	// StatusRateLimited marks an HTTP 429 from the provider. With the
	// per-source gate enforced this should not occur; when it does it
	// points at a misconfigured interval.
	StatusRateLimited ObservationStatus = "rate-limit-exceeded"
)

// Success reports whether the status carries a usable count.
func (s ObservationStatus) Success() bool { return s == StatusOK }

// CitationObservation is the outcome of asking one provider for one
// paper's citation count. Failures are recorded as observations rather
// than raised as errors, so aggregation can proceed with partial data.
// An observation is never mutated after construction.
type CitationObservation struct {
	// Source is the provider name (e.g. "opencitations").
	Source string `json:"source" yaml:"source"`

	// ArxivID identifies the paper the observation is about.
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// DOI is the DOI used for the lookup, when one was used.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Count is the citation count. Meaningful only when Status is ok;
	// always non-negative.
	Count int `json:"count" yaml:"count"`

	// FetchedAt is when the observation was produced.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`

	// Status classifies the outcome.
	Status ObservationStatus `json:"status" yaml:"status"`

	// Detail holds a human-readable failure cause, empty on success.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// ConfidenceTier indicates how many independent providers corroborated
// an aggregated count.
type ConfidenceTier string

const (
	TierNone         ConfidenceTier = "none"
	TierSingleSource ConfidenceTier = "single-source"
	TierMultiSource  ConfidenceTier = "multi-source"
)

// AggregatedCitation is the reconciled citation figure for one paper,
// derived from the observations of every source attempted. A new lookup
// produces a new value; existing ones are never mutated.
type AggregatedCitation struct {
	// ArxivID identifies the paper.
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Count is the reconciled citation count (0 when Confidence is none).
	Count int `json:"count" yaml:"count"`

	// Confidence reflects the number of successful observations.
	Confidence ConfidenceTier `json:"confidence" yaml:"confidence"`

	// Observations holds one entry per source attempted, in the order
	// the sources are configured, including failures.
	Observations []CitationObservation `json:"observations" yaml:"observations"`
}

// RankedResult pairs a paper with its aggregated citation figure. It
// lives only for the duration of one invocation.
type RankedResult struct {
	Paper     Paper              `json:"paper" yaml:"paper"`
	Citations AggregatedCitation `json:"citations" yaml:"citations"`
}
