package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cookscan",
	Short: "Heuristic recipe extraction from cookbook PDFs",
	Long: `Cookscan scans cookbook PDFs and extracts structured recipes.

Every text block is classified (title, ingredient list, instruction
steps, metadata, noise) by a rule cascade over a culinary lexicon,
assembled candidates are validated against a confidence threshold, and
accepted recipes land in a SQLite database. Rejections are recorded
with their reason so the lexicon can be tuned from the tally.`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml)",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
