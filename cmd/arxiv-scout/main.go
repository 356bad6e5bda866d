// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-scout CLI: arXiv search
// enriched with citation counts aggregated from OpenCitations, CrossRef,
// and Semantic Scholar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-scout/internal/logging"
	"github.com/pdiddy/arxiv-scout/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds provider credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// log is the process-wide logger, configured in PersistentPreRunE once
// the verbose flag is known.
var log zerolog.Logger

// rootCmd is the base command for the arxiv-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-scout",
	Short: "Search arXiv and rank papers by aggregated citation counts",
	Long: `arxiv-scout searches arXiv for papers and enriches the results with
citation counts aggregated from three independent providers: OpenCitations,
CrossRef, and Semantic Scholar. Conflicting per-provider counts are
reconciled into a single confidence-ranked figure per paper.

The discover subcommand widens a search into a historical scan (by default
1990-2020) to surface landmark papers by citation count.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		log = logging.New(os.Stderr, verbose)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-scout.yaml or ~/.config/arxiv-scout/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-source lookups and aggregation decisions")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-scout"))
		}
	}

	viper.SetEnvPrefix("ARXIV_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
