// Package gemini implements newsdesk.Completer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/newsdesk"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const (
	temperature     = 0.7
	maxOutputTokens = 2000
)

// Ensure Completer implements newsdesk.Completer at compile time.
var _ newsdesk.Completer = (*Completer)(nil)

// Completer implements newsdesk.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the Gemini model the completer calls.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompt to Gemini and returns the reply text.
func (c *Completer) Complete(ctx context.Context, prompt newsdesk.Prompt) (string, error) {
	if prompt.User == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt.User}},
		}},
		BuildConfig(prompt.System),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newsdesk.Errorf(newsdesk.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
