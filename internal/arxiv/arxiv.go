// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv is the thin search boundary over the arXiv Atom API. It
// turns category/title/author/date filters into a search_query, parses
// the feed, and hands back Paper records carrying the arXiv ID and the
// DOI when the feed includes one. The citation engine treats this
// package as an external collaborator.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// Query holds the search filters.
type Query struct {
	// Category is the arXiv archive (e.g. "cs").
	Category string
	// SubCategory narrows the archive (e.g. "LG" for cs.LG).
	SubCategory string
	// Title filters on words in the title.
	Title string
	// Author filters on author name.
	Author string
	// From and To bound the submission date. Zero values leave the
	// corresponding end open.
	From time.Time
	To   time.Time
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool {
	return q.Category == "" && q.Title == "" && q.Author == ""
}

// Client queries the arXiv API.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// Search runs the query and returns up to max papers in arXiv's result
// order (relevance descending).
func (c *Client) Search(ctx context.Context, query Query, max int) ([]types.Paper, error) {
	q, err := buildSearchQuery(query)
	if err != nil {
		return nil, err
	}
	if max <= 0 {
		max = 20
	}

	params := url.Values{
		"search_query": {q},
		"start":        {"0"},
		"max_results":  {fmt.Sprintf("%d", max)},
		"sortBy":       {"relevance"},
		"sortOrder":    {"descending"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var papers []types.Paper
	for _, entry := range feed.Entries {
		arxivID := ExtractID(entry.ID)
		if arxivID == "" {
			continue
		}

		p := types.Paper{
			ArxivID:  arxivID,
			DOI:      strings.TrimSpace(entry.DOI),
			Title:    collapseWhitespace(entry.Title),
			Abstract: strings.TrimSpace(entry.Summary),
			Category: entry.PrimaryCategory.Term,
		}
		for _, a := range entry.Authors {
			p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
		}
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			p.Published = t
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// buildSearchQuery constructs the search_query parameter. arXiv expects
// field prefixes joined with AND; the submittedDate range uses the
// YYYYMMDDHHMM form.
func buildSearchQuery(q Query) (string, error) {
	if q.IsEmpty() {
		return "", fmt.Errorf("empty arXiv query: provide a category, title, or author")
	}

	var parts []string

	if q.Category != "" {
		code, err := Code(q.Category, q.SubCategory)
		if err != nil {
			return "", err
		}
		parts = append(parts, "cat:"+code)
	}
	if q.Title != "" {
		parts = append(parts, "ti:"+quoteTerms(q.Title))
	}
	if q.Author != "" {
		parts = append(parts, "au:"+quoteTerms(q.Author))
	}
	if !q.From.IsZero() || !q.To.IsZero() {
		from := q.From
		if from.IsZero() {
			from = time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC) // arXiv predates nothing earlier
		}
		to := q.To
		if to.IsZero() {
			to = time.Now().UTC()
		}
		parts = append(parts, fmt.Sprintf("submittedDate:[%s TO %s]",
			from.Format("200601021504"), to.Format("200601021504")))
	}

	return strings.Join(parts, " AND "), nil
}

// quoteTerms wraps multi-word terms in quotes so arXiv treats them as a
// phrase.
func quoteTerms(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, ' ') {
		return `"` + s + `"`
	}
	return s
}

// collapseWhitespace normalizes the newline-wrapped titles the Atom feed
// produces into single-spaced text.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// arXiv Atom feed XML structures. The doi and primary_category elements
// come from the arXiv namespace extension.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string       `xml:"id"`
	Title           string       `xml:"title"`
	Summary         string       `xml:"summary"`
	Published       string       `xml:"published"`
	Authors         []atomAuthor `xml:"author"`
	DOI             string       `xml:"doi"`
	PrimaryCategory struct {
		Term string `xml:"term,attr"`
	} `xml:"primary_category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}
