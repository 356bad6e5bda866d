package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the arXiv categories the search flags accept",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range arxiv.Categories() {
			subs := arxiv.Subcategories(name)
			if len(subs) == 0 {
				fmt.Fprintln(os.Stdout, name)
				continue
			}
			fmt.Fprintf(os.Stdout, "%-10s %s\n", name, strings.Join(subs, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
