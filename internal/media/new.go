package media

import (
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/pkg/executor"
)

const DefaultSampleRate = 16000

type implExtractor struct {
	executor executor.Executor
	ffmpeg   string
	ffprobe  string
	logger   logger.Logger
}

// New creates an Extractor that runs the given ffmpeg and ffprobe binaries
func New(exec executor.Executor, ffmpeg, ffprobe string, log logger.Logger) Extractor {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	return &implExtractor{
		executor: exec,
		ffmpeg:   ffmpeg,
		ffprobe:  ffprobe,
		logger:   log,
	}
}
