package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/strategist-cli/internal/pipeline"
)

var (
	previewInput  string
	previewFormat string
	previewLimit  int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Parse and normalize an input file without running the pipeline",
	Long: `Reads a lead file, maps its headers onto the canonical schema, and
prints the canonical leads as JSON. Useful for checking alias coverage
before a full run.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := readInput(previewInput, previewFormat)
		if err != nil {
			return err
		}

		if previewLimit > 0 && previewLimit < len(records) {
			records = records[:previewLimit]
		}

		leads, err := pipeline.NewHeaderNormalizer(cfg.Pipeline).Normalize(records)
		if err != nil {
			return eris.Wrap(err, "preview: normalize")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(leads)
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewInput, "input", "", "path to input lead file (required)")
	previewCmd.Flags().StringVar(&previewFormat, "format", "", "input format: csv, xlsx, or txt (default: by extension)")
	previewCmd.Flags().IntVar(&previewLimit, "limit", 0, "max records to preview (0 = all)")
	_ = previewCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(previewCmd)
}
