package authoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	DeepSeekBaseURL = "https://api.deepseek.com"
	defaultTimeout  = 10 * time.Minute
)

// chatAuthor speaks the OpenAI chat completions protocol, which DeepSeek
// also serves.
type chatAuthor struct {
	client  *openai.Client
	model   string
	name    string
	timeout time.Duration
}

// NewChat creates an Author for an OpenAI-compatible endpoint.
// An empty baseURL keeps the library default (api.openai.com).
func NewChat(name, apiKey, baseURL, model string) Author {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &chatAuthor{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		name:    name,
		timeout: defaultTimeout,
	}
}

func (c *chatAuthor) Name() string {
	return c.name
}

func (c *chatAuthor) Complete(ctx context.Context, systemPrompt, userPrompt string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return Failed{Reason: fmt.Errorf("%s chat completion: %w", c.name, err)}
	}
	if len(resp.Choices) == 0 {
		return Failed{Reason: errors.New(c.name + " response has no choices")}
	}

	return Authored{Text: resp.Choices[0].Message.Content}
}
