package pipeline

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/sells-group/strategist-cli/internal/config"
	"github.com/sells-group/strategist-cli/internal/model"
)

// RequiredPolicy values for PipelineConfig.RequiredPolicy.
const (
	PolicyDrop = "drop"
	PolicyFlag = "flag"
)

// emailPattern is a light plausibility check, not full RFC validation:
// something before an @, something after it, with a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RecordCleaner normalizes field values, removes blank rows, deduplicates
// by email, and enforces the required-field policy.
type RecordCleaner struct {
	required    []string
	policy      string
	phoneRegion string
}

// NewRecordCleaner builds a cleaner from pipeline config. An unknown
// required-field policy falls back to flag, which never loses data.
func NewRecordCleaner(cfg config.PipelineConfig) *RecordCleaner {
	policy := cfg.RequiredPolicy
	if policy != PolicyDrop && policy != PolicyFlag {
		zap.L().Warn("clean: unknown required policy, falling back to flag",
			zap.String("policy", policy))
		policy = PolicyFlag
	}
	region := cfg.DefaultPhoneRegion
	if region == "" {
		region = "US"
	}
	return &RecordCleaner{
		required:    cfg.RequiredFields,
		policy:      policy,
		phoneRegion: region,
	}
}

// Clean transforms canonical leads into cleaned leads. Per record, in
// order: whitespace collapse, email normalization, phone normalization.
// Across the set: blank-row elimination, dedup by non-empty email (first
// occurrence wins), required-field enforcement. Returns a
// PipelineEmptyError if nothing survives.
func (c *RecordCleaner) Clean(leads []model.CanonicalLead) ([]model.CleanedLead, []model.ValidationWarning, error) {
	var warnings []model.ValidationWarning
	seen := make(map[string]bool, len(leads))
	cleaned := make([]model.CleanedLead, 0, len(leads))

	for i, lead := range leads {
		row := i + 1

		l := collapseFields(lead)

		l.Email = strings.ToLower(l.Email)
		if l.Email != "" && !emailPattern.MatchString(l.Email) {
			warnings = append(warnings, model.ValidationWarning{
				Row:    row,
				Field:  model.FieldEmail,
				Reason: "implausible email cleared: " + l.Email,
			})
			l.Email = ""
		}

		l.Phone = normalizePhone(l.Phone, c.phoneRegion)

		if l.IsBlank() {
			continue
		}

		if l.Email != "" {
			if seen[l.Email] {
				continue
			}
			seen[l.Email] = true
		}

		keep := true
		for _, field := range c.required {
			if l.Field(field) != "" {
				continue
			}
			reason := "missing required field"
			if c.policy == PolicyDrop {
				reason = "dropped: missing required field"
				keep = false
			}
			warnings = append(warnings, model.ValidationWarning{
				Row:    row,
				Field:  field,
				Reason: reason,
			})
		}
		if !keep {
			continue
		}

		cleaned = append(cleaned, model.CleanedLead{CanonicalLead: l})
	}

	if len(cleaned) == 0 {
		return nil, warnings, &PipelineEmptyError{Stage: "cleaning"}
	}

	zap.L().Info("clean: complete",
		zap.Int("in", len(leads)),
		zap.Int("out", len(cleaned)),
		zap.Int("warnings", len(warnings)),
	)

	return cleaned, warnings, nil
}

// collapseFields trims and collapses internal whitespace in every
// canonical field.
func collapseFields(l model.CanonicalLead) model.CanonicalLead {
	l.FullName = collapseSpace(l.FullName)
	l.Email = collapseSpace(l.Email)
	l.Company = collapseSpace(l.Company)
	l.Title = collapseSpace(l.Title)
	l.Industry = collapseSpace(l.Industry)
	l.Region = collapseSpace(l.Region)
	l.Seniority = collapseSpace(l.Seniority)
	l.Phone = collapseSpace(l.Phone)
	l.AINotes = collapseSpace(l.AINotes)
	return l
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizePhone formats a phone number to E.164 when it parses as a
// valid number for the default region. Anything else keeps the collapsed
// input, so re-cleaning is a no-op.
func normalizePhone(input, region string) string {
	if input == "" {
		return ""
	}
	number, err := phonenumbers.Parse(input, region)
	if err != nil {
		return input
	}
	if !phonenumbers.IsValidNumber(number) {
		return input
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
