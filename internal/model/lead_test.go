package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalLead_Field(t *testing.T) {
	l := CanonicalLead{FullName: "Jo", Email: "jo@acme.io", Phone: "+16502530000"}
	assert.Equal(t, "Jo", l.Field(FieldFullName))
	assert.Equal(t, "jo@acme.io", l.Field(FieldEmail))
	assert.Equal(t, "", l.Field(FieldCompany))
	assert.Equal(t, "", l.Field("unknown"))
}

func TestCanonicalLead_IsBlank(t *testing.T) {
	assert.True(t, CanonicalLead{}.IsBlank())
	assert.False(t, CanonicalLead{Phone: "x"}.IsBlank())
	assert.False(t, CanonicalLead{AINotes: "x"}.IsBlank())
}

func TestCleanedLead_Contactable(t *testing.T) {
	assert.True(t, CleanedLead{CanonicalLead: CanonicalLead{Email: "a@x.com"}}.Contactable())
	assert.True(t, CleanedLead{CanonicalLead: CanonicalLead{Phone: "+1650"}}.Contactable())
	assert.False(t, CleanedLead{CanonicalLead: CanonicalLead{FullName: "Jo"}}.Contactable())
}

func TestSegments_ClosedSet(t *testing.T) {
	assert.Equal(t, []Segment{SegmentA1, SegmentA2, SegmentB1, SegmentB2, SegmentC0}, Segments)
}
