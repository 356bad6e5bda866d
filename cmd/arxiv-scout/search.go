package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/citations"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search arXiv, optionally enriched with citation counts",
	Long: `Search queries arXiv with category, title, author, and date filters.
With --citations each result is enriched by querying OpenCitations,
CrossRef, and Semantic Scholar (rate-limited per provider) and
reconciling the counts; --sort-by-citations ranks the output by the
aggregated figure.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("category", "", "arXiv category (e.g. cs, math, physics)")
	searchCmd.Flags().String("sub-category", "", "subcategory within the category (e.g. LG for cs.LG)")
	searchCmd.Flags().String("title", "", "filter by words in the title")
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().String("start-date", "", "earliest submission date (YYYY-MM-DD)")
	searchCmd.Flags().String("end-date", "", "latest submission date (YYYY-MM-DD)")
	searchCmd.Flags().Bool("citations", false, "fetch and aggregate citation counts per result")
	searchCmd.Flags().Bool("sort-by-citations", false, "order results by aggregated citation count (implies --citations)")
	searchCmd.Flags().Int("max-results", 20, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	category, _ := cmd.Flags().GetString("category")
	subCategory, _ := cmd.Flags().GetString("sub-category")
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	withCitations, _ := cmd.Flags().GetBool("citations")
	sortByCitations, _ := cmd.Flags().GetBool("sort-by-citations")
	asJSON, _ := cmd.Flags().GetBool("json")

	if sortByCitations {
		withCitations = true
	}

	query := arxiv.Query{
		Category:    category,
		SubCategory: subCategory,
		Title:       title,
		Author:      author,
	}
	var err error
	if query.From, err = parseDateFlag(cmd, "start-date"); err != nil {
		return err
	}
	if query.To, err = parseDateFlag(cmd, "end-date"); err != nil {
		return err
	}
	if query.IsEmpty() {
		return fmt.Errorf("provide at least one of --category, --title, or --author")
	}

	searchCfg := searchConfig()
	if !cmd.Flags().Changed("max-results") && searchCfg.MaxResults > 0 {
		maxResults = searchCfg.MaxResults
	}

	papers, err := newArxivClient(searchCfg).Search(ctx, query, maxResults)
	if err != nil {
		return fmt.Errorf("arXiv search: %w", err)
	}

	results := make([]types.RankedResult, 0, len(papers))
	if withCitations {
		agg, cleanup, err := newAggregator(citationsConfig())
		if err != nil {
			return err
		}
		defer cleanup()

		for result := range citations.Scan(ctx, papers, agg) {
			results = append(results, result)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	} else {
		for _, p := range papers {
			results = append(results, types.RankedResult{Paper: p})
		}
	}

	if sortByCitations {
		results = citations.Rank(results, 0, false)
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := arxiv.WriteQueryFile(savePath, query, results); err != nil {
			return err
		}
	}

	if asJSON {
		return writeJSON(os.Stdout, results)
	}
	writeTable(os.Stdout, results, withCitations)
	return nil
}
