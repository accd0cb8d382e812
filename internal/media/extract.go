package media

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
)

// Extract converts the video's audio track to mono 16-bit PCM WAV at sampleRate.
// A non-positive sampleRate uses DefaultSampleRate.
func (e *implExtractor) Extract(ctx context.Context, videoPath, audioPath string, sampleRate int) error {
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, videoPath)
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	e.logger.Info(ctx, "Extracting audio from %s", videoPath)

	// -vn: drop video
	// -acodec pcm_s16le: 16-bit PCM
	// -ac 1: mono
	// -y: overwrite
	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", "1",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return nil
}

// CheckFFmpeg reports a configuration error when ffmpeg is not installed
func (e *implExtractor) CheckFFmpeg() error {
	if _, err := e.executor.LookPath(e.ffmpeg); err != nil {
		return fmt.Errorf("%w: %v", config.ErrMissingTool, err)
	}
	return nil
}
