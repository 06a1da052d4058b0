package pipeline

import (
	"go.uber.org/zap"

	"github.com/sells-group/strategist-cli/internal/config"
	"github.com/sells-group/strategist-cli/internal/model"
)

// SegmentDesigner assigns each scored lead to exactly one outbound
// segment using an ordered decision list. Evaluation stops at the first
// matching rule, so no lead can land in zero or two segments.
type SegmentDesigner struct {
	high   float64
	mid    float64
	scorer *LeadScorer
}

// NewSegmentDesigner builds a designer. The scorer is reused for its
// AI-potential signal check so segmentation and the score bonus agree on
// what counts as positive enrichment.
func NewSegmentDesigner(cfg config.SegmentConfig, scorer *LeadScorer) *SegmentDesigner {
	return &SegmentDesigner{
		high:   cfg.HighThreshold,
		mid:    cfg.MidThreshold,
		scorer: scorer,
	}
}

// Design produces one SegmentedLead per ScoredLead, same order and length.
func (d *SegmentDesigner) Design(leads []model.ScoredLead) []model.SegmentedLead {
	segmented := make([]model.SegmentedLead, 0, len(leads))
	counts := make(map[model.Segment]int, len(model.Segments))

	for _, lead := range leads {
		seg := d.assign(lead)
		counts[seg]++
		segmented = append(segmented, model.SegmentedLead{
			ScoredLead: lead,
			Segment:    seg,
		})
	}

	zap.L().Info("segment: complete",
		zap.Int("leads", len(segmented)),
		zap.Int("a1", counts[model.SegmentA1]),
		zap.Int("a2", counts[model.SegmentA2]),
		zap.Int("b1", counts[model.SegmentB1]),
		zap.Int("b2", counts[model.SegmentB2]),
		zap.Int("c0", counts[model.SegmentC0]),
	)

	return segmented
}

// assign walks the decision list top to bottom, first match wins.
func (d *SegmentDesigner) assign(lead model.ScoredLead) model.Segment {
	contactable := lead.Contactable()

	switch {
	case contactable && lead.StrategicScore >= d.high:
		return model.SegmentA1
	case contactable && lead.StrategicScore >= d.mid:
		return model.SegmentA2
	case contactable:
		return model.SegmentB1
	case d.scorer.HasPositiveSignal(lead.AINotes):
		return model.SegmentB2
	default:
		return model.SegmentC0
	}
}
