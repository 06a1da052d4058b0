package ingest

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/strategist-cli/internal/model"
)

// txtColumns is the implied header for line-based TXT input:
//
//	FullName, Company, Region, Title
//
// Missing trailing fields are left empty.
var txtColumns = []string{"full_name", "company", "region", "title"}

// ReadTXT converts simple line-based text into raw records. Each
// non-empty line is one lead; comma-separated positional fields follow
// the implied header above.
func ReadTXT(path string) ([]model.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read txt")
	}

	var records []model.RawRecord
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rec := make(model.RawRecord, len(txtColumns))
		parts := strings.Split(line, ",")
		for i, col := range txtColumns {
			if i < len(parts) {
				rec[col] = strings.TrimSpace(parts[i])
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
