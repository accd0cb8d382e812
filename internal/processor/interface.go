package processor

import (
	"context"
	"fmt"
)

// Processor runs the lecture pipeline Extract -> Transcribe -> Normalize -> Generate
type Processor interface {
	Process(ctx context.Context, videoPath, outputDir string) (*Artifacts, error)
	Batch(ctx context.Context, inputDir, outputDir string, exts []string) (BatchReport, error)
}

// Normalizer cleans raw transcript text into paragraphs
type Normalizer interface {
	Normalize(ctx context.Context, text string) string
}

type Stage string

const (
	StageExtract    Stage = "extract"
	StageTranscribe Stage = "transcribe"
	StageNormalize  Stage = "normalize"
	StageGenerate   Stage = "generate"
)

// StageError reports the stage that aborted a run
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Artifacts are the files one run writes, all keyed by the video stem
type Artifacts struct {
	Audio     string
	Subtitles string
	Words     string
	Processed string
	Notes     string
	Docx      string
}

// BatchReport counts the outcome of a directory run
type BatchReport struct {
	Succeeded int
	Total     int
	Failed    []string
}
