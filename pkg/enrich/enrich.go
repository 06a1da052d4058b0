// Package enrich provides the optional AI enrichment collaborator. It
// decorates cleaned leads with GTM insight notes; the core pipeline
// injects the returned text as an opaque ai_notes value and is correct
// whether enrichment is present, empty, or absent.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"

	"github.com/sells-group/strategist-cli/internal/model"
)

const systemPrompt = `You are a GTM analyst. Given a lead record as JSON, infer structured outbound insights. Respond with 2-4 short sentences covering likely pain points, buying-readiness signals, and the value angle most likely to resonate. Plain text only, no lists.`

// Client decorates a single lead with AI notes.
type Client struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// NewClient creates an enrichment client backed by the Anthropic SDK.
func NewClient(apiKey, modelID string) *Client {
	return &Client{
		client: sdk.NewClient(
			option.WithAPIKey(apiKey),
		),
		model:     modelID,
		maxTokens: 512,
	}
}

// Enrich builds an insight prompt for the lead and returns the model's
// notes as a single flattened string.
func (c *Client) Enrich(ctx context.Context, lead model.CleanedLead) (string, error) {
	payload, err := json.Marshal(lead.CanonicalLead)
	if err != nil {
		return "", eris.Wrap(err, "enrich: marshal lead")
	}

	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []sdk.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(fmt.Sprintf("Lead record (JSON):\n%s", payload))),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "enrich: create message")
	}

	var notes string
	for _, block := range msg.Content {
		if block.Type == "text" {
			notes += block.Text
		}
	}
	return notes, nil
}
