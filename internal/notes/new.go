package notes

import (
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/nguyentantai21042004/lecture-notes/internal/authoring"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

//go:embed templates/prompt.tmpl templates/document.tex
var builtin embed.FS

const (
	builtinPrompt   = "templates/prompt.tmpl"
	builtinDocument = "templates/document.tex"
)

// Options configures a Generator. Author may be nil, in which case every
// document comes from the template.
type Options struct {
	Author       authoring.Author
	PromptPath   string
	DocumentPath string
	Now          func() time.Time
	Logger       logger.Logger
}

type implGenerator struct {
	author   authoring.Author
	prompt   *template.Template
	document *template.Template
	now      func() time.Time
	logger   logger.Logger
}

// New loads the prompt and document templates, from the given paths when
// set and from the built-in copies otherwise. A template that cannot be read,
// parsed or executed is a configuration error.
func New(opts Options) (Generator, error) {
	prompt, err := loadTemplate("prompt", opts.PromptPath, builtinPrompt)
	if err != nil {
		return nil, err
	}
	if err := prompt.Execute(io.Discard, Request{}); err != nil {
		return nil, fmt.Errorf("prompt template: %w", err)
	}

	document, err := loadTemplate("document", opts.DocumentPath, builtinDocument)
	if err != nil {
		return nil, err
	}
	if err := document.Execute(io.Discard, documentData{}); err != nil {
		return nil, fmt.Errorf("document template: %w", err)
	}

	g := &implGenerator{
		author:   opts.Author,
		prompt:   prompt,
		document: document,
		now:      opts.Now,
		logger:   opts.Logger,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.logger == nil {
		g.logger = logger.Nop()
	}
	return g, nil
}

func loadTemplate(name, path, fallback string) (*template.Template, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = builtin.ReadFile(fallback)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s template: %w", name, err)
	}

	tmpl, err := template.New(name).Delims("<<", ">>").Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl, nil
}
