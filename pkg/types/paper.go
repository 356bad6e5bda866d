// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arxiv-scout: paper
// records returned by arXiv search, citation observations produced by the
// provider clients, and the aggregated figures derived from them.
package types

import "time"

// Paper is one record from an arXiv search. The arXiv ID is always
// present; the DOI is optional and, when absent, disqualifies the paper
// from the DOI-keyed citation providers.
type Paper struct {
	// ArxivID is the bare arXiv identifier, version suffix stripped
	// (e.g. "1706.03762").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// DOI is the Digital Object Identifier, if arXiv knows one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the paper title as returned by arXiv.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the submission date of the first version.
	Published time.Time `json:"published" yaml:"published"`

	// Category is the primary arXiv category (e.g. "cs.LG").
	Category string `json:"category" yaml:"category"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// HasDOI reports whether the paper carries a DOI.
func (p Paper) HasDOI() bool { return p.DOI != "" }
