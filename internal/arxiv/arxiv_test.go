// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <title>Attention Is All
 You Need</title>
    <summary>  The dominant sequence transduction models...  </summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <arxiv:doi>10.1000/test.123</arxiv:doi>
    <arxiv:primary_category term="cs.CL"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/hep-th/9711200v3</id>
    <title>The Large N Limit of Superconformal Field Theories</title>
    <summary>Holography.</summary>
    <published>1997-11-27T19:42:22Z</published>
    <author><name>Juan M. Maldacena</name></author>
    <arxiv:primary_category term="hep-th"/>
  </entry>
</feed>`

func TestSearchParsesFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, sampleFeed)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	c := &Client{HTTP: ts.Client(), UserAgent: "test/0.1"}
	papers, err := c.Search(context.Background(), Query{Category: "cs"}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("got %d papers, want 2", len(papers))
	}

	first := papers[0]
	if first.ArxivID != "1706.03762" {
		t.Errorf("ArxivID = %q, want version-stripped ID", first.ArxivID)
	}
	if first.DOI != "10.1000/test.123" {
		t.Errorf("DOI = %q, want 10.1000/test.123", first.DOI)
	}
	if first.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, want whitespace-collapsed title", first.Title)
	}
	if first.Category != "cs.CL" {
		t.Errorf("Category = %q, want cs.CL", first.Category)
	}
	if len(first.Authors) != 2 || first.Authors[0] != "Ashish Vaswani" {
		t.Errorf("Authors = %v, want both names", first.Authors)
	}
	if first.Published.Year() != 2017 {
		t.Errorf("Published = %v, want 2017", first.Published)
	}

	second := papers[1]
	if second.ArxivID != "hep-th/9711200" {
		t.Errorf("ArxivID = %q, want pre-2007 archive/number form", second.ArxivID)
	}
	if second.DOI != "" {
		t.Errorf("DOI = %q, want empty when the feed omits it", second.DOI)
	}
}

func TestSearchRequestShape(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, `<feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	c := &Client{HTTP: ts.Client(), UserAgent: "test/0.1"}
	_, err := c.Search(context.Background(), Query{Category: "cs", SubCategory: "LG"}, 7)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	q := capturedReq.URL.Query()
	if got := q.Get("search_query"); got != "cat:cs.LG" {
		t.Errorf("search_query = %q, want %q", got, "cat:cs.LG")
	}
	if got := q.Get("max_results"); got != "7" {
		t.Errorf("max_results = %q, want 7", got)
	}
	if got := capturedReq.Header.Get("User-Agent"); got != "test/0.1" {
		t.Errorf("User-Agent = %q, want test/0.1", got)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"malformed XML", http.StatusOK, `<feed><entry>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			old := arxivAPIBase
			arxivAPIBase = ts.URL
			defer func() { arxivAPIBase = old }()

			c := &Client{HTTP: ts.Client(), UserAgent: "test/0.1"}
			if _, err := c.Search(context.Background(), Query{Category: "cs"}, 5); err == nil {
				t.Error("Search returned nil error")
			}
		})
	}
}

func TestBuildSearchQuery(t *testing.T) {
	from := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   Query
		want    string
		wantErr bool
	}{
		{
			name:  "category only",
			query: Query{Category: "hep-th"},
			want:  "cat:hep-th",
		},
		{
			name:  "category with subcategory",
			query: Query{Category: "cs", SubCategory: "LG"},
			want:  "cat:cs.LG",
		},
		{
			name:  "category without subcategory wildcards",
			query: Query{Category: "cs"},
			want:  "cat:cs.*",
		},
		{
			name:  "single-word title",
			query: Query{Title: "transformers"},
			want:  "ti:transformers",
		},
		{
			name:  "multi-word title is quoted",
			query: Query{Title: "attention is all you need"},
			want:  `ti:"attention is all you need"`,
		},
		{
			name:  "author",
			query: Query{Author: "Maldacena"},
			want:  "au:Maldacena",
		},
		{
			name:  "category and date window",
			query: Query{Category: "hep-th", From: from, To: to},
			want:  "cat:hep-th AND submittedDate:[199001010000 TO 202012310000]",
		},
		{
			name:  "all filters combined",
			query: Query{Category: "cs", SubCategory: "AI", Title: "planning", Author: "Smith"},
			want:  "cat:cs.AI AND ti:planning AND au:Smith",
		},
		{
			name:    "empty query",
			query:   Query{},
			wantErr: true,
		},
		{
			name:    "unknown category",
			query:   Query{Category: "underwater-basket-weaving"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildSearchQuery(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatal("buildSearchQuery returned nil error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildSearchQuery: %v", err)
			}
			if got != tt.want {
				t.Errorf("buildSearchQuery = %q, want %q", got, tt.want)
			}
		})
	}
}
