// Package model defines the per-stage record types flowing through the
// lead pipeline. Each stage consumes the previous stage's type and returns
// a new slice of its own type; records are never mutated in place.
package model

// RawRecord is a single ingested row keyed by whatever headers the input
// file happened to have. No keys are guaranteed.
type RawRecord map[string]string

// Canonical field names. Every CanonicalLead exposes exactly this schema.
const (
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldCompany   = "company"
	FieldTitle     = "title"
	FieldIndustry  = "industry"
	FieldRegion    = "region"
	FieldSeniority = "seniority"
	FieldPhone     = "phone"
	FieldAINotes   = "ai_notes"
)

// CanonicalFields lists the canonical schema in output column order.
var CanonicalFields = []string{
	FieldFullName,
	FieldEmail,
	FieldCompany,
	FieldTitle,
	FieldIndustry,
	FieldRegion,
	FieldSeniority,
	FieldPhone,
	FieldAINotes,
}

// CanonicalLead is a RawRecord mapped onto the fixed canonical schema.
// Unknown fields are empty strings, never missing. AINotes is optional
// enrichment text injected by an external collaborator; the pipeline
// treats it as opaque.
type CanonicalLead struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Title     string `json:"title"`
	Industry  string `json:"industry"`
	Region    string `json:"region"`
	Seniority string `json:"seniority"`
	Phone     string `json:"phone"`
	AINotes   string `json:"ai_notes,omitempty"`
}

// Field returns the value of a canonical field by name. Unknown names
// return the empty string.
func (l CanonicalLead) Field(name string) string {
	switch name {
	case FieldFullName:
		return l.FullName
	case FieldEmail:
		return l.Email
	case FieldCompany:
		return l.Company
	case FieldTitle:
		return l.Title
	case FieldIndustry:
		return l.Industry
	case FieldRegion:
		return l.Region
	case FieldSeniority:
		return l.Seniority
	case FieldPhone:
		return l.Phone
	case FieldAINotes:
		return l.AINotes
	}
	return ""
}

// IsBlank reports whether every canonical field is empty.
func (l CanonicalLead) IsBlank() bool {
	for _, f := range CanonicalFields {
		if l.Field(f) != "" {
			return false
		}
	}
	return true
}

// CleanedLead is a CanonicalLead that passed cleaning: whitespace
// collapsed, email lowercased and plausible (or blanked), phone in E.164
// where parseable, not blank, and unique by non-empty email.
type CleanedLead struct {
	CanonicalLead
}

// Contactable reports whether the lead has a usable contact channel.
func (l CleanedLead) Contactable() bool {
	return l.Email != "" || l.Phone != ""
}

// SubScores holds the bounded per-dimension scores. Each value is in
// [0, 1].
type SubScores struct {
	Role           float64 `json:"role"`
	Industry       float64 `json:"industry"`
	Region         float64 `json:"region"`
	Seniority      float64 `json:"seniority"`
	Contactability float64 `json:"contactability"`
}

// ScoredLead is a CleanedLead with its score breakdown attached.
type ScoredLead struct {
	CleanedLead
	SubScores      SubScores `json:"sub_scores"`
	StrategicScore float64   `json:"strategic_score"`
}

// Segment is one of the five mutually exclusive outbound priority buckets.
type Segment string

const (
	SegmentA1 Segment = "A1" // high score, contactable
	SegmentA2 Segment = "A2" // mid score, contactable
	SegmentB1 Segment = "B1" // contactable, below mid
	SegmentB2 Segment = "B2" // not contactable, AI potential
	SegmentC0 Segment = "C0" // everything else
)

// Segments lists all segments in priority order.
var Segments = []Segment{SegmentA1, SegmentA2, SegmentB1, SegmentB2, SegmentC0}

// SegmentedLead is a ScoredLead assigned to exactly one segment.
type SegmentedLead struct {
	ScoredLead
	Segment Segment `json:"segment"`
}

// ValidationWarning records a non-fatal row-level defect: a field blanked
// or a record dropped/flagged for a missing required value. Warnings are
// accumulated and reported; they never abort a run.
type ValidationWarning struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}
