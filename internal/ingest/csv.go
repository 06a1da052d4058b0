// Package ingest reads lead files (CSV, XLSX, TXT) into raw records for
// the pipeline. It makes no assumptions about headers; mapping onto the
// canonical schema happens downstream.
package ingest

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/strategist-cli/internal/model"
)

// ReadCSV reads a CSV file into raw records keyed by the header row.
// Short rows leave trailing columns empty; a file with no data rows
// yields zero records.
func ReadCSV(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv")
	}

	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	return rowsToRecords(header, rows[1:]), nil
}

// rowsToRecords zips data rows with the header into raw records.
func rowsToRecords(header []string, rows [][]string) []model.RawRecord {
	records := make([]model.RawRecord, 0, len(rows))
	for _, row := range rows {
		rec := make(model.RawRecord, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
