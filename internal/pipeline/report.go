package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/strategist-cli/internal/model"
)

// FormatQualityReport generates a human-readable markdown quality report
// for a completed run.
func FormatQualityReport(result *Result) string {
	var b strings.Builder

	b.WriteString("# Quality Report\n\n")

	// Dataset overview.
	b.WriteString("## Dataset Overview\n")
	fmt.Fprintf(&b, "- Input rows: %d\n", result.Input)
	fmt.Fprintf(&b, "- Cleaned rows: %d\n", result.Cleaned)
	fmt.Fprintf(&b, "- Rows removed: %d\n", result.Input-result.Cleaned)
	fmt.Fprintf(&b, "- Warnings: %d\n\n", len(result.Warnings))

	// Row-level warnings.
	b.WriteString("## Validation Warnings\n")
	if len(result.Warnings) == 0 {
		b.WriteString("No row-level defects recorded.\n\n")
	} else {
		for _, w := range result.Warnings {
			if w.Field != "" {
				fmt.Fprintf(&b, "- row %d, %s: %s\n", w.Row, w.Field, w.Reason)
			} else {
				fmt.Fprintf(&b, "- row %d: %s\n", w.Row, w.Reason)
			}
		}
		b.WriteString("\n")
	}

	// Empty values per canonical column.
	b.WriteString("## Empty Values by Column\n")
	empty := emptyCounts(result.Leads)
	any := false
	for _, field := range model.CanonicalFields {
		if empty[field] == 0 {
			continue
		}
		if !any {
			b.WriteString("| Column | Empty Count | Empty % |\n")
			b.WriteString("|--------|-------------|---------|\n")
			any = true
		}
		pct := float64(empty[field]) / float64(len(result.Leads)) * 100
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", field, empty[field], pct)
	}
	if !any {
		b.WriteString("No empty values in any column.\n")
	}
	b.WriteString("\n")

	// Segment distribution.
	b.WriteString("## Leads per Segment\n")
	b.WriteString("| Segment | Count | Avg Score | Contactable |\n")
	b.WriteString("|---------|-------|-----------|-------------|\n")
	for _, st := range result.Stats {
		fmt.Fprintf(&b, "| %s | %d | %.1f | %d |\n",
			st.Segment, st.Count, st.AvgScore, st.Contactable)
	}
	b.WriteString("\n")

	// Summary.
	b.WriteString("## Summary\n")
	if len(result.Warnings) == 0 && result.Input == result.Cleaned {
		b.WriteString("All quality checks passed. No rows removed, no defects recorded.\n")
	} else {
		b.WriteString("Some rows were removed or flagged during cleaning. " +
			"Review the warnings above before exporting to a CRM.\n")
	}

	return b.String()
}

// emptyCounts counts empty values per canonical field across the output.
func emptyCounts(leads []model.SegmentedLead) map[string]int {
	counts := make(map[string]int, len(model.CanonicalFields))
	for _, lead := range leads {
		for _, field := range model.CanonicalFields {
			if lead.Field(field) == "" {
				counts[field]++
			}
		}
	}
	return counts
}
