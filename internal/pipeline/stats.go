package pipeline

import (
	"math"

	"github.com/sells-group/strategist-cli/internal/model"
)

// SegmentStat aggregates one segment's leads for reporting.
type SegmentStat struct {
	Segment     model.Segment `json:"segment"`
	Count       int           `json:"count"`
	AvgScore    float64       `json:"avg_score"`
	Contactable int           `json:"contactable"`
}

// AggregateSegments computes per-segment counts and average scores, in
// segment priority order. Empty segments are included with zero counts so
// reports always show all five buckets.
func AggregateSegments(leads []model.SegmentedLead) []SegmentStat {
	byseg := make(map[model.Segment]*SegmentStat, len(model.Segments))
	for _, seg := range model.Segments {
		byseg[seg] = &SegmentStat{Segment: seg}
	}

	totals := make(map[model.Segment]float64, len(model.Segments))
	for _, lead := range leads {
		st := byseg[lead.Segment]
		st.Count++
		totals[lead.Segment] += lead.StrategicScore
		if lead.Contactable() {
			st.Contactable++
		}
	}

	stats := make([]SegmentStat, 0, len(model.Segments))
	for _, seg := range model.Segments {
		st := byseg[seg]
		if st.Count > 0 {
			st.AvgScore = math.Round(totals[seg]/float64(st.Count)*10) / 10
		}
		stats = append(stats, *st)
	}
	return stats
}
