// Package media wraps ffmpeg and ffprobe.
package media

import (
	"context"
	"errors"
)

// ErrInputNotFound is returned when the video to extract from does not exist
var ErrInputNotFound = errors.New("input file not found")

// Extractor pulls the audio track out of a video file.
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string, sampleRate int) error
	Probe(ctx context.Context, path string) (*Info, error)
	CheckFFmpeg() error
}

// Info is the subset of ffprobe output the pipeline logs
type Info struct {
	Duration   float64
	FormatName string
	AudioCodec string
	SampleRate int
	Channels   int
}
