package authoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

type geminiAuthor struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
}

// NewGemini creates an Author that rotates through the supplied Gemini API
// keys when one is rate limited.
func NewGemini(apiKeys []string, model string) Author {
	return &geminiAuthor{
		apiKeys: apiKeys,
		model:   model,
	}
}

func (g *geminiAuthor) Name() string {
	return "gemini"
}

func (g *geminiAuthor) Complete(ctx context.Context, systemPrompt, userPrompt string) Result {
	text, err := g.call(ctx, systemPrompt, userPrompt)
	if err != nil {
		return Failed{Reason: err}
	}
	return Authored{Text: text}
}

// call rotates API keys on 429 / quota errors
func (g *geminiAuthor) call(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", errors.New("no Gemini API keys configured")
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		config := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		}
		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt), config)
		if err != nil {
			if isQuotaError(err) {
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var sb strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
			return sb.String(), nil
		}

		return "", errors.New("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (g *geminiAuthor) key() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey]
}

func (g *geminiAuthor) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
