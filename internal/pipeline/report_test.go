package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/strategist-cli/internal/model"
)

func segLead(seg model.Segment, score float64, email, industry string) model.SegmentedLead {
	return model.SegmentedLead{
		ScoredLead: model.ScoredLead{
			CleanedLead: model.CleanedLead{
				CanonicalLead: model.CanonicalLead{FullName: "X", Email: email, Industry: industry},
			},
			StrategicScore: score,
		},
		Segment: seg,
	}
}

func testResult() *Result {
	leads := []model.SegmentedLead{
		segLead(model.SegmentA1, 90, "a@x.com", "fintech"),
		segLead(model.SegmentA1, 80, "b@x.com", "fintech"),
		segLead(model.SegmentC0, 10, "", "saas"),
	}
	return &Result{
		Leads:   leads,
		Stats:   AggregateSegments(leads),
		Input:   4,
		Cleaned: 3,
		Warnings: []model.ValidationWarning{
			{Row: 2, Field: model.FieldEmail, Reason: "missing required field"},
		},
	}
}

func TestAggregateSegments(t *testing.T) {
	stats := AggregateSegments(testResult().Leads)
	assert.Len(t, stats, 5)
	assert.Equal(t, model.SegmentA1, stats[0].Segment)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 85.0, stats[0].AvgScore, 0.01)
	assert.Equal(t, 2, stats[0].Contactable)
	// Empty segments still reported.
	assert.Equal(t, model.SegmentB2, stats[3].Segment)
	assert.Equal(t, 0, stats[3].Count)
}

func TestQualityReport_Sections(t *testing.T) {
	report := FormatQualityReport(testResult())
	for _, section := range []string{
		"# Quality Report",
		"## Dataset Overview",
		"## Validation Warnings",
		"## Empty Values by Column",
		"## Leads per Segment",
		"## Summary",
	} {
		assert.Contains(t, report, section)
	}
	assert.Contains(t, report, "Input rows: 4")
	assert.Contains(t, report, "row 2, email: missing required field")
}

func TestQualityReport_CleanRunSummary(t *testing.T) {
	leads := []model.SegmentedLead{
		segLead(model.SegmentA1, 90, "a@x.com", "fintech"),
	}
	// All canonical fields populated so no empty-value rows appear.
	leads[0].Company = "Acme"
	leads[0].Title = "CEO"
	leads[0].Region = "Europe"
	leads[0].Seniority = "Chief"
	leads[0].Phone = "+16502530000"
	leads[0].AINotes = "n/a"

	report := FormatQualityReport(&Result{
		Leads: leads, Stats: AggregateSegments(leads), Input: 1, Cleaned: 1,
	})
	assert.Contains(t, report, "All quality checks passed")
	assert.Contains(t, report, "No empty values in any column.")
}

func TestPlaybook_Sections(t *testing.T) {
	playbook := FormatPlaybook(testResult())
	for _, section := range []string{
		"# Outbound Playbook",
		"## Segment Overview",
		"## Segment Strategies",
		"### A1",
		"### C0",
		"## Industry Mix",
		"## Next Best Actions",
	} {
		assert.Contains(t, playbook, section)
	}
	// Empty segments get no strategy block.
	assert.NotContains(t, playbook, "### B2")
	// Industries are title-cased for display, most common first.
	idxFintech := strings.Index(playbook, "- Fintech")
	idxSaas := strings.Index(playbook, "- Saas")
	assert.Greater(t, idxFintech, 0)
	assert.Greater(t, idxSaas, idxFintech)
}
