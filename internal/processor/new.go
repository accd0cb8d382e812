package processor

import (
	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/media"
	"github.com/nguyentantai21042004/lecture-notes/internal/notes"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
)

// Dependencies are the stage collaborators. They hold no per-run state.
type Dependencies struct {
	Extractor   media.Extractor
	Transcriber transcriber.Transcriber
	Normalizer  Normalizer
	Generator   notes.Generator
}

type implProcessor struct {
	cfg         *config.Config
	extractor   media.Extractor
	transcriber transcriber.Transcriber
	normalizer  Normalizer
	generator   notes.Generator
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Dependencies, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   deps.Extractor,
		transcriber: deps.Transcriber,
		normalizer:  deps.Normalizer,
		generator:   deps.Generator,
		logger:      log,
	}
}
