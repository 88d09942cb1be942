// Package openai implements newsdesk.Completer using the OpenAI chat
// completions API.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4"

const (
	maxTokens   = 2000
	temperature = 0.7
)

// Ensure Completer implements newsdesk.Completer at compile time.
var _ newsdesk.Completer = (*Completer)(nil)

// Completer implements newsdesk.Completer with an OpenAI chat model.
type Completer struct {
	client *openai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *openai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the OpenAI model the completer calls.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompt as a system + user chat and returns the reply.
func (c *Completer) Complete(ctx context.Context, prompt newsdesk.Prompt) (string, error) {
	if prompt.User == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "prompt required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, prompt))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", newsdesk.Errorf(newsdesk.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for a prompt.
// Reasoning models (o1/o3/o4/gpt-5*) take MaxCompletionTokens and reject a
// custom temperature; other models take MaxTokens.
func BuildRequest(model string, prompt newsdesk.Prompt) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: prompt.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt.User})

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
	if isReasoningModel(model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
		req.Temperature = temperature
	}
	return req
}

func isReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
