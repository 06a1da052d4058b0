package pipeline

import (
	"strings"

	"github.com/sells-group/strategist-cli/internal/config"
	"github.com/sells-group/strategist-cli/internal/model"
)

// defaultAliases maps normalized header variants to canonical field names.
// Keys are in normalizeHeader form: lowercase, single-space separated.
// Deliberately generous; config.Pipeline.Aliases entries override these.
var defaultAliases = map[string]string{
	"full name":        model.FieldFullName,
	"fullname":         model.FieldFullName,
	"name":             model.FieldFullName,
	"contact name":     model.FieldFullName,
	"lead name":        model.FieldFullName,
	"first name":       model.FieldFullName,
	"email":            model.FieldEmail,
	"e mail":           model.FieldEmail,
	"mail":             model.FieldEmail,
	"email address":    model.FieldEmail,
	"contact email":    model.FieldEmail,
	"work email":       model.FieldEmail,
	"company":          model.FieldCompany,
	"company name":     model.FieldCompany,
	"business name":    model.FieldCompany,
	"organization":     model.FieldCompany,
	"organisation":     model.FieldCompany,
	"account":          model.FieldCompany,
	"account name":     model.FieldCompany,
	"biz":              model.FieldCompany,
	"employer":         model.FieldCompany,
	"title":            model.FieldTitle,
	"job title":        model.FieldTitle,
	"role":             model.FieldTitle,
	"position":         model.FieldTitle,
	"job role":         model.FieldTitle,
	"industry":         model.FieldIndustry,
	"sector":           model.FieldIndustry,
	"industry sector":  model.FieldIndustry,
	"vertical":         model.FieldIndustry,
	"region":           model.FieldRegion,
	"country":          model.FieldRegion,
	"country code":     model.FieldRegion,
	"location":         model.FieldRegion,
	"geo":              model.FieldRegion,
	"territory":        model.FieldRegion,
	"seniority":        model.FieldSeniority,
	"seniority level":  model.FieldSeniority,
	"level":            model.FieldSeniority,
	"phone":            model.FieldPhone,
	"phone number":     model.FieldPhone,
	"telephone":        model.FieldPhone,
	"mobile":           model.FieldPhone,
	"cell":             model.FieldPhone,
	"contact phone":    model.FieldPhone,
	"ai notes":         model.FieldAINotes,
	"notes":            model.FieldAINotes,
	"enrichment":       model.FieldAINotes,
	"enrichment notes": model.FieldAINotes,
	"insights":         model.FieldAINotes,
}

// HeaderNormalizer maps arbitrary input headers onto the canonical lead
// schema using an alias table.
type HeaderNormalizer struct {
	aliases map[string]string
}

// NewHeaderNormalizer builds a normalizer from the built-in alias table
// merged with any overrides from config.
func NewHeaderNormalizer(cfg config.PipelineConfig) *HeaderNormalizer {
	aliases := make(map[string]string, len(defaultAliases)+len(cfg.Aliases))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	for k, v := range cfg.Aliases {
		aliases[normalizeHeader(k)] = v
	}
	return &HeaderNormalizer{aliases: aliases}
}

// normalizeHeader lowercases a header name and collapses underscores,
// dashes, and whitespace runs to single spaces, so "Email_Address",
// "e-mail address" and " EMAIL  ADDRESS " all produce the same key.
func normalizeHeader(h string) string {
	h = strings.ToLower(h)
	h = strings.ReplaceAll(h, "_", " ")
	h = strings.ReplaceAll(h, "-", " ")
	return strings.Join(strings.Fields(h), " ")
}

// Normalize maps a sequence of raw records onto the canonical schema. Row
// order and count are preserved; unmapped headers are dropped and missing
// canonical fields come back as empty strings. Returns a SchemaError if
// the input has no rows or no header maps to any canonical field.
func (n *HeaderNormalizer) Normalize(raw []model.RawRecord) ([]model.CanonicalLead, error) {
	if len(raw) == 0 {
		return nil, &SchemaError{Reason: "input has no rows"}
	}

	mappedAny := false
	leads := make([]model.CanonicalLead, 0, len(raw))

	for _, rec := range raw {
		var lead model.CanonicalLead
		for header, value := range rec {
			canonical, ok := n.aliases[normalizeHeader(header)]
			if !ok {
				continue
			}
			mappedAny = true
			setField(&lead, canonical, value)
		}
		leads = append(leads, lead)
	}

	if !mappedAny {
		return nil, &SchemaError{Reason: "no input column maps to a canonical field"}
	}

	return leads, nil
}

// setField assigns a canonical field on a lead by name. Unknown names are
// ignored; the alias table only produces canonical names.
func setField(l *model.CanonicalLead, name, value string) {
	switch name {
	case model.FieldFullName:
		l.FullName = value
	case model.FieldEmail:
		l.Email = value
	case model.FieldCompany:
		l.Company = value
	case model.FieldTitle:
		l.Title = value
	case model.FieldIndustry:
		l.Industry = value
	case model.FieldRegion:
		l.Region = value
	case model.FieldSeniority:
		l.Seniority = value
	case model.FieldPhone:
		l.Phone = value
	case model.FieldAINotes:
		l.AINotes = value
	}
}
