package cli

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-notes/internal/authoring"
	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/media"
	"github.com/nguyentantai21042004/lecture-notes/internal/normalizer"
	"github.com/nguyentantai21042004/lecture-notes/internal/notes"
	"github.com/nguyentantai21042004/lecture-notes/internal/processor"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
)

func (a *app) extractor() media.Extractor {
	return media.New(a.executor, a.cfg.FFmpeg.BinaryPath, a.cfg.FFmpeg.ProbePath, a.log)
}

func (a *app) transcriber() transcriber.Transcriber {
	return transcriber.New(a.cfg.Whisper, a.executor, a.log)
}

func (a *app) normalizer() (*normalizer.Normalizer, error) {
	res, err := normalizer.LoadResources()
	if err != nil {
		return nil, fmt.Errorf("load language resources: %w", err)
	}
	return normalizer.New(res, a.log), nil
}

// generator decides once whether notes are authored remotely
func (a *app) generator(ctx context.Context, templateOnly bool) (notes.Generator, error) {
	opts := notes.Options{
		PromptPath:   a.cfg.Templates.Prompt,
		DocumentPath: a.cfg.Templates.Document,
		Logger:       a.log,
	}

	if !templateOnly {
		if author, ok := authoring.FromConfig(a.cfg); ok {
			a.log.Info(ctx, "Authoring with %s (%s)", author.Name(), a.cfg.Authoring.Model)
			opts.Author = author
		} else if a.cfg.Authoring.Provider != config.ProviderNone {
			a.log.Warn(ctx, "No API key for %s, notes will use the template", a.cfg.Authoring.Provider)
		}
	}

	gen, err := notes.New(opts)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return gen, nil
}

// pipeline checks the external tools and assembles the full processor
func (a *app) pipeline(ctx context.Context) (processor.Processor, error) {
	ext := a.extractor()
	if err := ext.CheckFFmpeg(); err != nil {
		return nil, err
	}
	tr := a.transcriber()
	if err := tr.Check(); err != nil {
		return nil, err
	}

	norm, err := a.normalizer()
	if err != nil {
		return nil, err
	}
	gen, err := a.generator(ctx, false)
	if err != nil {
		return nil, err
	}

	return processor.New(a.cfg, processor.Dependencies{
		Extractor:   ext,
		Transcriber: tr,
		Normalizer:  norm,
		Generator:   gen,
	}, a.log), nil
}
