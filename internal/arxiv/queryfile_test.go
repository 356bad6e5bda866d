// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

func TestQueryFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")

	query := Query{
		Category:    "cs",
		SubCategory: "LG",
		Title:       "attention",
		From:        time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	results := []types.RankedResult{
		{
			Paper: types.Paper{ArxivID: "1706.03762", Title: "Attention Is All You Need"},
			Citations: types.AggregatedCitation{
				ArxivID: "1706.03762", Count: 5400, Confidence: types.TierMultiSource,
			},
		},
		{
			Paper:     types.Paper{ArxivID: "1807.00001", Title: "Uncited"},
			Citations: types.AggregatedCitation{ArxivID: "1807.00001", Confidence: types.TierNone},
		},
	}

	if err := WriteQueryFile(path, query, results); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}

	if qf.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", qf.Summary.Total)
	}
	if qf.Summary.WithCount != 1 {
		t.Errorf("Summary.WithCount = %d, want 1", qf.Summary.WithCount)
	}
	if len(qf.Results) != 2 || qf.Results[0].Citations.Count != 5400 {
		t.Errorf("results did not survive the roundtrip: %+v", qf.Results)
	}

	got, err := qf.Query.ToQuery()
	if err != nil {
		t.Fatalf("ToQuery: %v", err)
	}
	if got.Category != "cs" || got.SubCategory != "LG" || got.Title != "attention" {
		t.Errorf("query filters did not survive: %+v", got)
	}
	if !got.From.Equal(query.From) || !got.To.Equal(query.To) {
		t.Errorf("date window did not survive: %v..%v", got.From, got.To)
	}
}

func TestToQueryRejectsBadDates(t *testing.T) {
	p := QueryParams{Category: "cs", DateFrom: "01/01/1990"}
	if _, err := p.ToQuery(); err == nil {
		t.Error("ToQuery accepted a non-ISO date")
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	if _, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ReadQueryFile returned nil error for a missing file")
	}
}
