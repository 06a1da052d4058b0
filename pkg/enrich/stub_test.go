package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategist-cli/internal/model"
)

func TestStub_Deterministic(t *testing.T) {
	stub := &Stub{}
	lead := model.CleanedLead{
		CanonicalLead: model.CanonicalLead{Company: "Acme", Industry: "Fintech"},
	}

	a, err := stub.Enrich(context.Background(), lead)
	require.NoError(t, err)
	b, err := stub.Enrich(context.Background(), lead)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Contains(t, a, "Acme")
	assert.Contains(t, a, "Fintech")
	assert.Contains(t, a, "growth")
}

func TestStub_EmptyFieldsFallBack(t *testing.T) {
	stub := &Stub{}
	notes, err := stub.Enrich(context.Background(), model.CleanedLead{})
	require.NoError(t, err)
	assert.Contains(t, notes, "the company")
	assert.Contains(t, notes, "their industry")
}
