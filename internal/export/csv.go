// Package export writes pipeline output to files: the scored leads CSV
// and the markdown playbook and quality report, optionally rendered to
// HTML.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/strategist-cli/internal/model"
)

// csvHeader is the fixed output column order.
var csvHeader = []string{
	"full_name", "email", "company", "title", "industry", "region",
	"seniority", "phone",
	"role_score", "industry_score", "region_score", "seniority_score",
	"contactability",
	"strategic_score", "segment", "ai_notes",
}

// WriteLeadsCSV writes segmented leads to a CSV file with sub-scores and
// segment included.
func WriteLeadsCSV(path string, leads []model.SegmentedLead) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, lead := range leads {
		row := []string{
			lead.FullName,
			lead.Email,
			lead.Company,
			lead.Title,
			lead.Industry,
			lead.Region,
			lead.Seniority,
			lead.Phone,
			formatScore(lead.SubScores.Role),
			formatScore(lead.SubScores.Industry),
			formatScore(lead.SubScores.Region),
			formatScore(lead.SubScores.Seniority),
			formatScore(lead.SubScores.Contactability),
			strconv.FormatFloat(lead.StrategicScore, 'f', -1, 64),
			string(lead.Segment),
			lead.AINotes,
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}
	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
