package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/strategist-cli/internal/export"
	"github.com/sells-group/strategist-cli/internal/ingest"
	"github.com/sells-group/strategist-cli/internal/model"
	"github.com/sells-group/strategist-cli/internal/pipeline"
	"github.com/sells-group/strategist-cli/pkg/enrich"
)

var (
	runInput     string
	runFormat    string
	runOutputDir string
	runLimit     int
	runEnrich    bool
	runOffline   bool
	runHTML      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full lead pipeline on an input file",
	Long: `Reads a lead file, normalizes headers onto the canonical schema,
cleans and deduplicates records, scores and segments them, and writes
scored_leads.csv, outbound_playbook.md, and quality_report.md.

Examples:
  # CSV in, outputs into ./out
  strategist-cli run --input leads.csv --output-dir out

  # With AI enrichment against the live API
  strategist-cli run --input leads.csv --enrich

  # Offline enrichment (deterministic stub, no API key needed)
  strategist-cli run --input leads.csv --enrich --offline`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := readInput(runInput, runFormat)
		if err != nil {
			return err
		}
		zap.L().Info("run: parsed input", zap.Int("records", len(records)))

		if runLimit > 0 && runLimit < len(records) {
			records = records[:runLimit]
		}

		if runEnrich {
			cfg.Enrich.Enabled = true
		}

		enricher, err := buildEnricher()
		if err != nil {
			return err
		}

		result, err := pipeline.New(cfg, enricher).Run(ctx, records)
		if err != nil {
			return eris.Wrap(err, "run: pipeline")
		}

		if err := writeOutputs(result); err != nil {
			return err
		}

		zap.L().Info("run: complete",
			zap.Int("input", result.Input),
			zap.Int("output", len(result.Leads)),
			zap.Int("warnings", len(result.Warnings)),
			zap.String("output_dir", runOutputDir),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "path to input lead file (required)")
	runCmd.Flags().StringVar(&runFormat, "format", "", "input format: csv, xlsx, or txt (default: by extension)")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "out", "directory for output files")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "max records to process (0 = all)")
	runCmd.Flags().BoolVar(&runEnrich, "enrich", false, "enable AI enrichment before scoring")
	runCmd.Flags().BoolVar(&runOffline, "offline", false, "use the deterministic stub enricher (no API key needed)")
	runCmd.Flags().BoolVar(&runHTML, "html", false, "also render playbook and report to HTML")
	_ = runCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(runCmd)
}

// readInput dispatches to the right reader by flag or file extension.
func readInput(path, format string) ([]model.RawRecord, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx":
			format = "xlsx"
		case ".txt":
			format = "txt"
		default:
			format = "csv"
		}
	}

	switch format {
	case "csv":
		return ingest.ReadCSV(path)
	case "xlsx":
		return ingest.ReadXLSX(path)
	case "txt":
		return ingest.ReadTXT(path)
	default:
		return nil, eris.Errorf("run: unknown input format %q", format)
	}
}

// buildEnricher returns the enrichment collaborator for this run, or nil
// when enrichment is disabled.
func buildEnricher() (pipeline.Enricher, error) {
	if !cfg.Enrich.Enabled {
		return nil, nil
	}
	if runOffline {
		return &enrich.Stub{}, nil
	}
	if cfg.Anthropic.Key == "" {
		return nil, eris.New("run: STRATEGIST_ANTHROPIC_KEY not set; set it or use --offline for stub enrichment")
	}
	return enrich.NewClient(cfg.Anthropic.Key, cfg.Enrich.Model), nil
}

// writeOutputs writes the leads CSV, playbook, and quality report.
func writeOutputs(result *pipeline.Result) error {
	if err := os.MkdirAll(runOutputDir, 0o755); err != nil {
		return eris.Wrap(err, "run: create output dir")
	}

	if err := export.WriteLeadsCSV(filepath.Join(runOutputDir, "scored_leads.csv"), result.Leads); err != nil {
		return err
	}

	playbook := pipeline.FormatPlaybook(result)
	report := pipeline.FormatQualityReport(result)

	if err := export.WriteMarkdown(filepath.Join(runOutputDir, "outbound_playbook.md"), playbook); err != nil {
		return err
	}
	if err := export.WriteMarkdown(filepath.Join(runOutputDir, "quality_report.md"), report); err != nil {
		return err
	}

	if runHTML {
		if err := export.WriteHTML(filepath.Join(runOutputDir, "outbound_playbook.html"), playbook); err != nil {
			return err
		}
		if err := export.WriteHTML(filepath.Join(runOutputDir, "quality_report.html"), report); err != nil {
			return err
		}
	}

	return nil
}
