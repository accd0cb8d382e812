// Package transcriber runs whisper.cpp over an audio file.
package transcriber

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/lecture-notes/internal/subtitle"
)

// ErrInputNotFound is returned when the audio file does not exist
var ErrInputNotFound = errors.New("audio file not found")

// Transcriber turns speech into timestamped segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error)
	Info(ctx context.Context, audioPath string, opts Options) (*Summary, error)
	Check() error
}

// Options tune a single transcription. Empty Language means auto-detect.
// WordsPath receives the raw per-token JSON when WordTimestamps is set.
type Options struct {
	Language       string
	WordTimestamps bool
	WordsPath      string
}

type Result struct {
	Segments []subtitle.Segment
	Language string
	// Raw is whisper's JSON output as written
	Raw []byte
}

// Summary describes a transcription without the full segment list
type Summary struct {
	Language string
	Segments int
	Preview  string
	Model    string
}
