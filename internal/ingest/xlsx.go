package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/strategist-cli/internal/model"
)

// ReadXLSX reads the first sheet of an XLSX file into raw records keyed
// by the header row.
func ReadXLSX(path string) ([]model.RawRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("ingest: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	var header []string
	var rows [][]string

	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			header = cells
			for k, col := range header {
				header[k] = strings.TrimSpace(col)
			}
			continue
		}
		rows = append(rows, cells)
	}

	if header == nil {
		return nil, nil
	}

	return rowsToRecords(header, rows), nil
}
