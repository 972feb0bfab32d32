// Package insight adapts the Gemini API to the services.TextGenerator port.
package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel matches the model the budgeting prompt was written against.
const DefaultModel = "gemini-2.5-flash"

// GeminiClient generates text through the Gemini API. The API key is read
// from the process environment (GEMINI_API_KEY or GOOGLE_API_KEY) by the
// genai client itself.
type GeminiClient struct {
	model string
}

func NewGeminiClient(model string) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiClient{model: model}
}

// Generate sends the prompt and returns the first candidate's text.
// One synchronous call, no retry; the caller bounds ctx with a timeout.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
