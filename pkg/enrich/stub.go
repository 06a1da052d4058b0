package enrich

import (
	"context"
	"fmt"

	"github.com/sells-group/strategist-cli/internal/model"
)

// Stub is a deterministic offline enricher. It produces canned notes so
// the pipeline runs end to end without API keys, in tests and --offline
// mode.
type Stub struct{}

// Enrich returns deterministic notes shaped like real enrichment output.
func (s *Stub) Enrich(_ context.Context, lead model.CleanedLead) (string, error) {
	company := lead.Company
	if company == "" {
		company = "the company"
	}
	industry := lead.Industry
	if industry == "" {
		industry = "their industry"
	}

	return fmt.Sprintf(
		"%s operates in %s and likely deals with manual workflows and slow pipeline visibility. "+
			"Signals: growth and recent hiring. "+
			"Value drivers: automation, pipeline visibility, AI-assisted prioritization.",
		company, industry,
	), nil
}
