package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// parseDateFlag reads a YYYY-MM-DD flag; an empty flag yields the zero
// time, leaving that end of the range open.
func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: use YYYY-MM-DD", name, value)
	}
	return t, nil
}

// writeTable prints results as a human-readable table.
func writeTable(w io.Writer, results []types.RankedResult, withCitations bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	if withCitations {
		fmt.Fprintf(w, "%-4s  %-14s  %-52s  %-20s  %-4s  %9s  %s\n",
			"Rank", "arXiv ID", "Title", "Authors", "Year", "Citations", "Confidence")
		fmt.Fprintln(w, strings.Repeat("-", 120))
	} else {
		fmt.Fprintf(w, "%-4s  %-14s  %-52s  %-20s  %-4s\n",
			"Rank", "arXiv ID", "Title", "Authors", "Year")
		fmt.Fprintln(w, strings.Repeat("-", 102))
	}

	for i, r := range results {
		year := ""
		if !r.Paper.Published.IsZero() {
			year = fmt.Sprintf("%d", r.Paper.Published.Year())
		}
		if withCitations {
			fmt.Fprintf(w, "%-4d  %-14s  %-52s  %-20s  %-4s  %9d  %s\n",
				i+1, r.Paper.ArxivID, truncate(r.Paper.Title, 52), formatAuthors(r.Paper.Authors),
				year, r.Citations.Count, r.Citations.Confidence)
		} else {
			fmt.Fprintf(w, "%-4d  %-14s  %-52s  %-20s  %-4s\n",
				i+1, r.Paper.ArxivID, truncate(r.Paper.Title, 52), formatAuthors(r.Paper.Authors), year)
		}
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// writeJSON prints results as indented JSON.
func writeJSON(w io.Writer, results []types.RankedResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
