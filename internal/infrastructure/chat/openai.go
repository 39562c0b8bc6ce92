// Package chat implements the completion-provider client used by the chat
// relay.
package chat

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemInstruction = "You are a helpful assistant."

// Config carries the provider settings, injected at construction time.
type Config struct {
	APIKey string
	Model  string
}

// OpenAIClient relays single messages to the OpenAI chat-completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg Config) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClient{client: openai.NewClient(cfg.APIKey), model: model}
}

// Complete sends one user message with the fixed system instruction and
// returns the generated text verbatim.
func (c *OpenAIClient) Complete(ctx context.Context, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty choice list")
	}
	return resp.Choices[0].Message.Content, nil
}
