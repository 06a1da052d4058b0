package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategist-cli/internal/config"
	"github.com/sells-group/strategist-cli/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Pipeline: config.PipelineConfig{
			RequiredFields:     []string{model.FieldEmail},
			RequiredPolicy:     PolicyFlag,
			DefaultPhoneRegion: "US",
		},
		Scoring: testScoringConfig(),
		Segment: config.SegmentConfig{HighThreshold: 70, MidThreshold: 50},
	}
}

// stubEnricher returns fixed notes, or an error when failing is set.
type stubEnricher struct {
	notes   string
	failing bool
	calls   int
}

func (s *stubEnricher) Enrich(_ context.Context, _ model.CleanedLead) (string, error) {
	s.calls++
	if s.failing {
		return "", assert.AnError
	}
	return s.notes, nil
}

func TestPipeline_EndToEnd(t *testing.T) {
	p := New(testConfig(), nil)
	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Email": "A@X.com ", "Title": "VP Sales", "Seniority Level": "VP", "Industry": "Fintech"},
		{"email": "a@x.com", "title": "vp sales"},
		{"Full Name": "No Contact"},
	})
	require.NoError(t, err)

	// Dedup: the two a@x.com rows collapse into the first occurrence.
	require.Len(t, result.Leads, 2)
	first := result.Leads[0]
	assert.Equal(t, "a@x.com", first.Email)
	assert.Equal(t, "VP Sales", first.Title)

	// VP in a target industry with a valid email lands in A1.
	assert.GreaterOrEqual(t, first.StrategicScore, 70.0)
	assert.Equal(t, model.SegmentA1, first.Segment)

	// No email, no phone, no notes lands in C0.
	assert.Equal(t, model.SegmentC0, result.Leads[1].Segment)

	assert.Equal(t, 3, result.Input)
	assert.Equal(t, 2, result.Cleaned)
}

func TestPipeline_AllBlankRowsAbort(t *testing.T) {
	p := New(testConfig(), nil)
	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Email": " ", "Full Name": ""},
		{"Email": "", "Full Name": "  "},
	})
	assert.Nil(t, result)
	var emptyErr *PipelineEmptyError
	require.ErrorAs(t, err, &emptyErr)
}

func TestPipeline_NoRowsIsSchemaError(t *testing.T) {
	p := New(testConfig(), nil)
	_, err := p.Run(context.Background(), nil)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestPipeline_EnrichmentInjected(t *testing.T) {
	cfg := testConfig()
	cfg.Enrich.Enabled = true
	stub := &stubEnricher{notes: "clear growth signals"}
	p := New(cfg, stub)

	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Full Name": "No Contact", "Company": "Acme"},
	})
	require.NoError(t, err)
	require.Len(t, result.Leads, 1)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "clear growth signals", result.Leads[0].AINotes)
	// Not contactable but positive signal present.
	assert.Equal(t, model.SegmentB2, result.Leads[0].Segment)
}

func TestPipeline_EnrichmentFailureDegradesToBaseline(t *testing.T) {
	cfg := testConfig()
	cfg.Enrich.Enabled = true
	p := New(cfg, &stubEnricher{failing: true})

	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Full Name": "Jo", "Email": "jo@acme.io"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Leads[0].AINotes)
}

func TestPipeline_NilEnricherSkipsEnrichment(t *testing.T) {
	cfg := testConfig()
	cfg.Enrich.Enabled = true
	p := New(cfg, nil)

	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Full Name": "Jo", "Email": "jo@acme.io"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Leads[0].AINotes)
}

func TestPipeline_ExistingNotesNotOverwritten(t *testing.T) {
	cfg := testConfig()
	cfg.Enrich.Enabled = true
	stub := &stubEnricher{notes: "generated"}
	p := New(cfg, stub)

	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Full Name": "Jo", "Email": "jo@acme.io", "Notes": "pre-supplied insight"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, "pre-supplied insight", result.Leads[0].AINotes)
}

func TestPipeline_SegmentsPartitionOutput(t *testing.T) {
	p := New(testConfig(), nil)
	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Email": "a@x.com", "Seniority": "Chief", "Industry": "Fintech", "Region": "Europe", "Title": "CEO"},
		{"Email": "b@x.com", "Seniority": "Manager"},
		{"Email": "c@x.com"},
		{"Full Name": "Quiet"},
	})
	require.NoError(t, err)

	total := 0
	for _, st := range result.Stats {
		total += st.Count
	}
	assert.Equal(t, len(result.Leads), total)
}

func TestPipeline_WarningsSurfaced(t *testing.T) {
	p := New(testConfig(), nil)
	result, err := p.Run(context.Background(), []model.RawRecord{
		{"Full Name": "Jo", "Email": "not-an-email"},
	})
	require.NoError(t, err)
	// Implausible email cleared plus missing required email flag.
	assert.Len(t, result.Warnings, 2)
}
