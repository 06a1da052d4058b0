// Package pipeline implements the deterministic lead transformation
// pipeline: header normalization, cleaning and deduplication, scoring,
// and segmentation. Stages run strictly in order over an in-memory
// sequence; each stage consumes the previous stage's full output.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/strategist-cli/internal/config"
	"github.com/sells-group/strategist-cli/internal/model"
)

// Enricher decorates a cleaned lead with AI notes. Implementations live
// outside the core; the pipeline only injects the returned text into the
// ai_notes field before scoring and treats it as opaque.
type Enricher interface {
	Enrich(ctx context.Context, lead model.CleanedLead) (string, error)
}

// Result is the full output of a pipeline run.
type Result struct {
	Leads    []model.SegmentedLead     `json:"leads"`
	Warnings []model.ValidationWarning `json:"warnings,omitempty"`
	Stats    []SegmentStat             `json:"stats"`
	// Input and Cleaned track row counts for the quality report.
	Input   int `json:"input"`
	Cleaned int `json:"cleaned"`
}

// Pipeline wires the four stages together with an optional enrichment
// collaborator.
type Pipeline struct {
	cfg        *config.Config
	normalizer *HeaderNormalizer
	cleaner    *RecordCleaner
	scorer     *LeadScorer
	designer   *SegmentDesigner
	enricher   Enricher
}

// New creates a Pipeline from config. enricher may be nil, which disables
// enrichment regardless of config.
func New(cfg *config.Config, enricher Enricher) *Pipeline {
	scorer := NewLeadScorer(cfg.Scoring, cfg.Enrich.Enabled)
	return &Pipeline{
		cfg:        cfg,
		normalizer: NewHeaderNormalizer(cfg.Pipeline),
		cleaner:    NewRecordCleaner(cfg.Pipeline),
		scorer:     scorer,
		designer:   NewSegmentDesigner(cfg.Segment, scorer),
		enricher:   enricher,
	}
}

// Run executes the full pipeline over a batch of raw records. Any stage
// error aborts the run; no partial output is returned.
func (p *Pipeline) Run(ctx context.Context, raw []model.RawRecord) (*Result, error) {
	log := zap.L()
	log.Info("pipeline: starting run", zap.Int("records", len(raw)))

	canonical, err := p.normalizer.Normalize(raw)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: normalize headers")
	}

	cleaned, warnings, err := p.cleaner.Clean(canonical)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: clean records")
	}

	if p.enricher != nil && p.cfg.Enrich.Enabled {
		cleaned = p.injectEnrichment(ctx, cleaned)
	}

	scored := p.scorer.Score(cleaned)
	segmented := p.designer.Design(scored)

	return &Result{
		Leads:    segmented,
		Warnings: warnings,
		Stats:    AggregateSegments(segmented),
		Input:    len(raw),
		Cleaned:  len(cleaned),
	}, nil
}

// injectEnrichment fills empty ai_notes from the enricher. Enrichment is
// best effort: a failed call leaves the field empty and the lead falls
// back to its deterministic baseline score.
func (p *Pipeline) injectEnrichment(ctx context.Context, leads []model.CleanedLead) []model.CleanedLead {
	out := make([]model.CleanedLead, len(leads))
	copy(out, leads)

	for i := range out {
		if out[i].AINotes != "" {
			continue
		}
		notes, err := p.enricher.Enrich(ctx, out[i])
		if err != nil {
			zap.L().Warn("pipeline: enrichment failed, keeping baseline",
				zap.String("email", out[i].Email),
				zap.Error(err),
			)
			continue
		}
		out[i].AINotes = notes
	}

	return out
}
