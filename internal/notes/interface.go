// Package notes turns normalized lecture text into a LaTeX document.
package notes

import "context"

// Generator produces the notes document. Generate and Template never fail
// and never return an empty document.
type Generator interface {
	RenderPrompt(req Request) (string, error)
	Generate(ctx context.Context, text, title string) string
	Template(text, title string) string
	WriteFile(ctx context.Context, text, title, path string) error
	WriteDocx(text, title, path string) error
}

// Request is the input of one generation, built once per document
type Request struct {
	Title      string
	SourceText string
}

func NewRequest(title, text string) Request {
	return Request{Title: title, SourceText: text}
}
