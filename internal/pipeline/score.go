package pipeline

import (
	"math"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/sells-group/strategist-cli/internal/config"
	"github.com/sells-group/strategist-cli/internal/model"
)

// ladderEntry pairs a lookup keyword with its 0..1 score.
type ladderEntry struct {
	keyword string
	score   float64
}

// seniorityLadder maps seniority keywords to a 0..1 score. Checked in
// order so the most senior match wins.
var seniorityLadder = []ladderEntry{
	{"c-level", 1.0},
	{"chief", 1.0},
	{"founder", 1.0},
	{"owner", 1.0},
	{"president", 0.85},
	{"vp", 0.85},
	{"vice president", 0.85},
	{"director", 0.65},
	{"head", 0.65},
	{"principal", 0.5},
	{"manager", 0.4},
	{"senior", 0.3},
}

// roleLadder maps decision-maker title keywords to a 0..1 score.
var roleLadder = []ladderEntry{
	{"ceo", 1.0},
	{"cto", 1.0},
	{"cfo", 1.0},
	{"coo", 1.0},
	{"founder", 1.0},
	{"owner", 1.0},
	{"president", 0.9},
	{"vp", 0.9},
	{"vice president", 0.9},
	{"head of", 0.75},
	{"director", 0.75},
	{"sales", 0.5},
	{"growth", 0.5},
	{"revenue", 0.5},
	{"marketing", 0.4},
	{"manager", 0.35},
	{"lead", 0.25},
}

// LeadScorer computes bounded sub-scores and a weighted strategic score
// per lead. All lookups are categorical; unknown categories score the
// lower bound, never error.
type LeadScorer struct {
	cfg           config.ScoringConfig
	industries    map[string]bool
	regions       map[string]bool
	enrichEnabled bool
}

// NewLeadScorer builds a scorer. enrichEnabled gates whether AI notes are
// consulted for the bonus; when false, present notes are ignored, which is
// identical to them being absent.
func NewLeadScorer(cfg config.ScoringConfig, enrichEnabled bool) *LeadScorer {
	return &LeadScorer{
		cfg:           cfg,
		industries:    lowerSet(cfg.TargetIndustries),
		regions:       lowerSet(cfg.TargetRegions),
		enrichEnabled: enrichEnabled,
	}
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return set
}

// Score produces one ScoredLead per CleanedLead, same order and length.
func (s *LeadScorer) Score(leads []model.CleanedLead) []model.ScoredLead {
	scored := make([]model.ScoredLead, 0, len(leads))
	for _, lead := range leads {
		sub := s.subScores(lead)
		scored = append(scored, model.ScoredLead{
			CleanedLead:    lead,
			SubScores:      sub,
			StrategicScore: s.strategicScore(sub, lead.AINotes),
		})
	}
	zap.L().Info("score: complete", zap.Int("leads", len(scored)))
	return scored
}

func (s *LeadScorer) subScores(lead model.CleanedLead) model.SubScores {
	sub := model.SubScores{
		Role:      ladderScore(lead.Title, roleLadder),
		Seniority: ladderScore(lead.Seniority, seniorityLadder),
	}
	if s.industries[strings.ToLower(lead.Industry)] {
		sub.Industry = 1.0
	}
	if s.regions[strings.ToLower(lead.Region)] {
		sub.Region = 1.0
	}
	if lead.Contactable() {
		sub.Contactability = 1.0
	}
	return sub
}

// ladderScore returns the score of the first ladder keyword found in the
// value, matched case-insensitively. Single-word keywords must match a
// whole token ("cto" must not match inside "director"); phrase keywords
// match as substrings. No match scores zero.
func ladderScore(value string, ladder []ladderEntry) float64 {
	v := strings.ToLower(value)
	if v == "" {
		return 0
	}

	tokens := make(map[string]bool)
	for _, t := range strings.FieldsFunc(v, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		tokens[t] = true
	}

	for _, entry := range ladder {
		if isWord(entry.keyword) {
			if tokens[entry.keyword] {
				return entry.score
			}
		} else if strings.Contains(v, entry.keyword) {
			return entry.score
		}
	}
	return 0
}

// isWord reports whether a keyword is a single bare token.
func isWord(keyword string) bool {
	for _, r := range keyword {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// strategicScore combines sub-scores into a single bounded score using
// configured weights, scaled to the configured range. Zero total weight
// falls back to the unweighted mean.
func (s *LeadScorer) strategicScore(sub model.SubScores, aiNotes string) float64 {
	w := s.cfg.Weights
	total := w.Role + w.Industry + w.Region + w.Seniority + w.Contactability

	var base float64
	if total == 0 {
		zap.L().Warn("score: all weights are zero, falling back to unweighted mean")
		base = (sub.Role + sub.Industry + sub.Region + sub.Seniority + sub.Contactability) / 5
	} else {
		base = (w.Role*sub.Role +
			w.Industry*sub.Industry +
			w.Region*sub.Region +
			w.Seniority*sub.Seniority +
			w.Contactability*sub.Contactability) / total
	}

	score := base * s.cfg.Max
	if s.HasPositiveSignal(aiNotes) {
		score += s.cfg.EnrichmentBonus
	}

	score = math.Max(s.cfg.Min, math.Min(s.cfg.Max, score))

	pow := math.Pow(10, float64(s.cfg.Precision))
	return math.Round(score*pow) / pow
}

// HasPositiveSignal reports whether AI notes contain a configured
// positive marker. Disabled enrichment and empty notes are equivalent:
// both report false, so missing enrichment never changes the baseline.
func (s *LeadScorer) HasPositiveSignal(aiNotes string) bool {
	if !s.enrichEnabled || aiNotes == "" {
		return false
	}
	notes := strings.ToLower(aiNotes)
	for _, marker := range s.cfg.PositiveMarkers {
		if marker != "" && strings.Contains(notes, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
