package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategist-cli/internal/model"
)

func sampleLeads() []model.SegmentedLead {
	return []model.SegmentedLead{
		{
			ScoredLead: model.ScoredLead{
				CleanedLead: model.CleanedLead{
					CanonicalLead: model.CanonicalLead{
						FullName: "Jo Smith", Email: "jo@acme.io", Company: "Acme",
						Title: "CTO", Industry: "Fintech", Region: "Europe",
						Seniority: "C-Level", Phone: "+16502530000",
					},
				},
				SubScores:      model.SubScores{Role: 1, Industry: 1, Region: 1, Seniority: 1, Contactability: 1},
				StrategicScore: 100,
			},
			Segment: model.SegmentA1,
		},
	}
}

func TestWriteLeadsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scored_leads.csv")
	require.NoError(t, WriteLeadsCSV(path, sampleLeads()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "jo@acme.io", rows[1][1])
	assert.Equal(t, "100", rows[1][13])
	assert.Equal(t, "A1", rows[1][14])
}

func TestWriteMarkdownAndHTML(t *testing.T) {
	dir := t.TempDir()
	md := "# Report\n\n| A | B |\n|---|---|\n| 1 | 2 |\n"

	mdPath := filepath.Join(dir, "report.md")
	require.NoError(t, WriteMarkdown(mdPath, md))
	data, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, md, string(data))

	htmlPath := filepath.Join(dir, "report.html")
	require.NoError(t, WriteHTML(htmlPath, md))
	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "<table>")
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("plain **bold** text")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>bold</strong>")
}
