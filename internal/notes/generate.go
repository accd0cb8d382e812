package notes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/lecture-notes/internal/authoring"
)

const systemPrompt = "You are an expert at creating well-structured LaTeX documents from lecture transcripts. Create professional, academic notes with proper formatting."

// RenderPrompt fills the prompt template with the title and the full text
func (g *implGenerator) RenderPrompt(req Request) (string, error) {
	var sb strings.Builder
	if err := g.prompt.Execute(&sb, req); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

// Generate asks the configured author for the document and falls back to the
// template on any failure. Blank text never reaches the author: it yields the
// template document with an empty body and no remote call is made.
func (g *implGenerator) Generate(ctx context.Context, text, title string) string {
	if g.author == nil {
		g.logger.Warn(ctx, "No authoring credential configured, generating template notes")
		return g.Template(text, title)
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Warn(ctx, "No text to author, generating empty template notes")
		return g.Template(text, title)
	}

	prompt, err := g.RenderPrompt(NewRequest(title, text))
	if err != nil {
		g.logger.Error(ctx, "Failed to render prompt: %v", err)
		return g.Template(text, title)
	}

	g.logger.Info(ctx, "Authoring notes with %s", g.author.Name())

	switch result := g.author.Complete(ctx, systemPrompt, prompt).(type) {
	case authoring.Authored:
		if strings.TrimSpace(result.Text) != "" {
			return result.Text
		}
		g.logger.Warn(ctx, "%s returned an empty document, using template", g.author.Name())
	case authoring.Failed:
		g.logger.Error(ctx, "Authoring with %s failed, using template: %v", g.author.Name(), result.Reason)
	default:
		g.logger.Error(ctx, "Unexpected authoring result %T, using template", result)
	}

	return g.Template(text, title)
}

// WriteFile generates the document and writes it to path
func (g *implGenerator) WriteFile(ctx context.Context, text, title, path string) error {
	if path == "" {
		return errors.New("empty output path")
	}

	g.logger.Info(ctx, "Generating LaTeX notes...")
	doc := g.Generate(ctx, text, title)

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write notes %s: %w", path, err)
	}

	g.logger.Info(ctx, "LaTeX notes generated: %s", path)
	return nil
}
