package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cookscan/cookscan/internal/bootstrap"
	"github.com/cookscan/cookscan/internal/pipeline"
)

var (
	extractSource      string
	extractCategory    string
	extractConcurrency int
	extractJSON        bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <cookbook.pdf> [more.pdf ...]",
	Short: "Extract recipes from cookbook PDFs into the database",
	Long: `Extract runs the full pipeline over one or more cookbook PDFs:
text extraction, recipe segmentation, validation and storage.

Examples:
  cookscan extract atk-2024.pdf
  cookscan extract --source "ATK 2024" --category mains atk-2024.pdf
  cookscan extract --json teen-cookbook.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bootstrap.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		logger, err := bootstrap.CreateLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		comps, err := bootstrap.NewComponents(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = comps.Store.Close() }()

		for _, path := range args {
			source := extractSource
			if source == "" {
				source = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			p := bootstrap.NewPipeline(comps, cfg, logger, pipeline.Options{
				Source:      source,
				Category:    extractCategory,
				Concurrency: extractConcurrency,
			})

			report, runErr := p.Run(cmd.Context(), path)
			if runErr != nil {
				return fmt.Errorf("extract %s: %w", path, runErr)
			}

			if printErr := printReport(cmd, report); printErr != nil {
				return printErr
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractSource, "source", "", "source label for stored recipes (default: PDF file name)")
	extractCmd.Flags().StringVar(&extractCategory, "category", "", "category applied to accepted recipes")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", 0, "validation worker count (default from config)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print the run report as JSON")
}

func printReport(cmd *cobra.Command, report *pipeline.Report) error {
	if extractJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s: %d/%d pages, %d candidates, %d accepted, %d rejected (%dms)\n",
		report.Source, report.Pages, report.PagesTotal, report.Candidates,
		report.Accepted, report.Rejected, report.DurationMs)
	for reason, count := range report.RejectionReasons {
		cmd.Printf("  rejected %-40s %d\n", reason, count)
	}
	for tier, count := range report.ConfidenceTiers {
		cmd.Printf("  tier %-8s %d\n", tier, count)
	}
	return nil
}
