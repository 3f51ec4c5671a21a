package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-enrich/internal/enrich"
	"github.com/sells-group/lead-enrich/internal/export"
	"github.com/sells-group/lead-enrich/internal/model"
	"github.com/sells-group/lead-enrich/pkg/apollo"
)

var (
	enrichInput       string
	enrichOutput      string
	enrichFormat      string
	enrichLimit       int
	enrichDryRun      bool
	enrichCredits     int
	enrichConcurrency int
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a CSV of LinkedIn profile URLs",
	Long: `Reads a CSV with linkedin_url (required), name and company_domain columns,
deduplicates by linkedin_url (first occurrence wins), enriches each unique
record and writes the result table.

Examples:
  # Dry run — parse and dedupe only, no API calls
  lead-enrich enrich --input leads.csv --dry-run

  # Enrich and write CSV
  lead-enrich enrich --input leads.csv --output enriched.csv

  # XLSX output, first 20 records only
  lead-enrich enrich --input leads.csv --output enriched.xlsx --format xlsx --limit 20`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := export.ReadInputCSV(enrichInput)
		if err != nil {
			return eris.Wrap(err, "enrich: read input")
		}

		unique := enrich.Dedupe(records)
		zap.L().Info("parsed input",
			zap.String("input", enrichInput),
			zap.Int("rows", len(records)),
			zap.Int("unique", len(unique)),
		)

		if enrichLimit > 0 && enrichLimit < len(unique) {
			unique = unique[:enrichLimit]
		}

		if enrichDryRun {
			return printRecordsJSON(unique)
		}

		if cfg.Apollo.Key == "" {
			return eris.New("apollo api key is required (LEADENRICH_APOLLO_KEY)")
		}

		opts := []apollo.Option{
			apollo.WithTimeout(time.Duration(cfg.Apollo.TimeoutSecs) * time.Second),
		}
		if cfg.Apollo.BaseURL != "" {
			opts = append(opts, apollo.WithBaseURL(cfg.Apollo.BaseURL))
		}
		client := apollo.NewClient(cfg.Apollo.Key, opts...)

		credits := cfg.Enrich.MobileCreditBudget
		if cmd.Flags().Changed("credits") {
			credits = enrichCredits
		}
		concurrency := cfg.Enrich.Concurrency
		if cmd.Flags().Changed("concurrency") {
			concurrency = enrichConcurrency
		}

		session := enrich.NewSession(client, credits)
		runner := enrich.NewRunner(session, concurrency)

		leads, err := runner.Run(ctx, unique)
		if err != nil {
			return eris.Wrap(err, "enrich: run batch")
		}

		switch enrichFormat {
		case "csv":
			err = export.WriteCSV(leads, enrichOutput)
		case "xlsx":
			err = export.WriteXLSX(leads, enrichOutput)
		default:
			return eris.Errorf("enrich: unknown output format %q (want csv or xlsx)", enrichFormat)
		}
		if err != nil {
			return eris.Wrap(err, "enrich: write output")
		}

		zap.L().Info("export complete",
			zap.Int("records", len(leads)),
			zap.String("output", enrichOutput),
			zap.String("format", enrichFormat),
		)
		return nil
	},
}

func printRecordsJSON(records []model.InputRecord) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return eris.Wrap(err, "enrich: encode records")
	}
	return nil
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "path to input CSV (required)")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "enriched_leads.csv", "path to output file")
	enrichCmd.Flags().StringVar(&enrichFormat, "format", "csv", "output format: csv or xlsx")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 0, "process at most N unique records (0 = all)")
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "parse and dedupe only, print records as JSON")
	enrichCmd.Flags().IntVar(&enrichCredits, "credits", 0, "override the synthetic mobile credit budget")
	enrichCmd.Flags().IntVar(&enrichConcurrency, "concurrency", 0, "override the record concurrency")
	_ = enrichCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(enrichCmd)
}
