package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/citations"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan a historical window for the most-cited papers",
	Long: `Discover widens a category search into a historical scan and ranks the
candidates by aggregated citation count. The default window is 1990-2020:
papers need time to accumulate citations, so recent work is systematically
under-represented and the scan deliberately stops before it.

Every candidate costs up to three rate-limited provider calls; --scan-cap
bounds the total.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().String("category", "", "arXiv category to scan (e.g. cs, math)")
	discoverCmd.Flags().String("sub-category", "", "subcategory within the category")
	discoverCmd.Flags().String("title", "", "filter by words in the title")
	discoverCmd.Flags().String("author", "", "filter by author name")
	discoverCmd.Flags().String("start-date", "1990-01-01", "window start (YYYY-MM-DD)")
	discoverCmd.Flags().String("end-date", "2020-12-31", "window end (YYYY-MM-DD)")
	discoverCmd.Flags().Int("limit", 10, "number of ranked results to keep")
	discoverCmd.Flags().Int("scan-cap", 50, "maximum candidates to aggregate")
	discoverCmd.Flags().Int("concurrency", 1, "papers aggregated in parallel (provider dispatch stays rate-limited)")
	discoverCmd.Flags().Bool("with-citations-only", false, "drop candidates with no corroborated citation count")
	discoverCmd.Flags().Bool("json", false, "output results as JSON")
	discoverCmd.Flags().String("save", "", "save the scan and its ranking to a YAML file")

	rootCmd.AddCommand(discoverCmd)
}

// arxivSearcher adapts the arXiv client to the discovery driver's
// Searcher interface, carrying the non-date filters along.
type arxivSearcher struct {
	client *arxiv.Client
	query  arxiv.Query
}

func (s arxivSearcher) Search(ctx context.Context, from, to time.Time, max int) ([]types.Paper, error) {
	q := s.query
	q.From, q.To = from, to
	return s.client.Search(ctx, q, max)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	category, _ := cmd.Flags().GetString("category")
	subCategory, _ := cmd.Flags().GetString("sub-category")
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	limit, _ := cmd.Flags().GetInt("limit")
	scanCap, _ := cmd.Flags().GetInt("scan-cap")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	requireCitations, _ := cmd.Flags().GetBool("with-citations-only")
	asJSON, _ := cmd.Flags().GetBool("json")

	query := arxiv.Query{
		Category:    category,
		SubCategory: subCategory,
		Title:       title,
		Author:      author,
	}
	if query.IsEmpty() {
		return fmt.Errorf("provide at least one of --category, --title, or --author")
	}

	cfg := types.DiscoveryConfig{
		Limit:            limit,
		ScanCap:          scanCap,
		Concurrency:      concurrency,
		RequireCitations: requireCitations,
	}
	var err error
	if cfg.WindowStart, err = parseDateFlag(cmd, "start-date"); err != nil {
		return err
	}
	if cfg.WindowEnd, err = parseDateFlag(cmd, "end-date"); err != nil {
		return err
	}

	agg, cleanup, err := newAggregator(citationsConfig())
	if err != nil {
		return err
	}
	defer cleanup()

	searcher := arxivSearcher{client: newArxivClient(searchConfig()), query: query}
	results, err := citations.Discover(ctx, searcher, agg, cfg)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		saved := query
		saved.From, saved.To = cfg.WindowStart, cfg.WindowEnd
		if err := arxiv.WriteQueryFile(savePath, saved, results); err != nil {
			return err
		}
	}

	if asJSON {
		return writeJSON(os.Stdout, results)
	}
	writeTable(os.Stdout, results, true)
	return nil
}
