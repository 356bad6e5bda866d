// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// QueryFile is the on-disk representation of a search and its ranked
// results. A run can be saved to a file and reloaded later without
// spending provider quota again.
type QueryFile struct {
	Query   QueryParams          `yaml:"query"`
	Results []types.RankedResult `yaml:"results"`
	Summary QuerySummary         `yaml:"summary"`
}

// QueryParams stores the query filters in a serializable form.
type QueryParams struct {
	Category    string `yaml:"category,omitempty"`
	SubCategory string `yaml:"sub_category,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Author      string `yaml:"author,omitempty"`
	DateFrom    string `yaml:"date_from,omitempty"`
	DateTo      string `yaml:"date_to,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	WithCount int       `yaml:"with_count"`
	Timestamp time.Time `yaml:"timestamp"`
}

const dateFmt = "2006-01-02"

// WriteQueryFile saves a query and its ranked results to a YAML file.
func WriteQueryFile(path string, query Query, results []types.RankedResult) error {
	qf := QueryFile{
		Query: QueryParams{
			Category:    query.Category,
			SubCategory: query.SubCategory,
			Title:       query.Title,
			Author:      query.Author,
		},
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now().UTC(),
		},
	}
	for _, r := range results {
		if r.Citations.Confidence != types.TierNone && r.Citations.Confidence != "" {
			qf.Summary.WithCount++
		}
	}

	if !query.From.IsZero() {
		qf.Query.DateFrom = query.From.Format(dateFmt)
	}
	if !query.To.IsZero() {
		qf.Query.DateTo = query.To.Format(dateFmt)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery converts stored QueryParams back into a Query struct.
func (p QueryParams) ToQuery() (Query, error) {
	q := Query{
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Title:       p.Title,
		Author:      p.Author,
	}
	if p.DateFrom != "" {
		t, err := time.Parse(dateFmt, p.DateFrom)
		if err != nil {
			return q, fmt.Errorf("invalid date_from %q: %w", p.DateFrom, err)
		}
		q.From = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(dateFmt, p.DateTo)
		if err != nil {
			return q, fmt.Errorf("invalid date_to %q: %w", p.DateTo, err)
		}
		q.To = t
	}
	return q, nil
}
