package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
)

const previewLength = 200

// Transcribe runs whisper.cpp with JSON output and parses the segments.
// In word timestamp mode the full JSON, tokens included, is also copied to
// opts.WordsPath.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, audioPath)
	}

	workDir, err := os.MkdirTemp("", "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("create whisper work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	// whisper appends .json to the prefix
	outputPrefix := filepath.Join(workDir, strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath)))

	language := opts.Language
	if language == "" {
		language = t.cfg.Language
	}
	if language == "" {
		language = "auto"
	}

	t.logger.Info(ctx, "Transcribing %s with %s (language=%s, threads=%d)",
		audioPath, t.cfg.ModelName, language, t.cfg.Threads)

	// -oj: JSON output, -ojf: JSON with per-token timings
	format := "-oj"
	if opts.WordTimestamps {
		format = "-ojf"
	}
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		format,
		"-l", language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	raw, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	result, err := parseWhisperJSON(raw)
	if err != nil {
		return nil, err
	}

	if opts.WordTimestamps && opts.WordsPath != "" {
		if err := os.WriteFile(opts.WordsPath, raw, 0644); err != nil {
			return nil, fmt.Errorf("write word timestamps: %w", err)
		}
		t.logger.Info(ctx, "Detailed transcription saved: %s", opts.WordsPath)
	}

	if len(result.Segments) == 0 {
		t.logger.Warn(ctx, "No speech segments detected in %s", audioPath)
	}
	t.logger.Info(ctx, "Transcription completed: language=%s, segments=%d", result.Language, len(result.Segments))

	return result, nil
}

// Info transcribes the audio and summarizes the result
func (t *implTranscriber) Info(ctx context.Context, audioPath string, opts Options) (*Summary, error) {
	opts.WordTimestamps = false

	result, err := t.Transcribe(ctx, audioPath, opts)
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, len(result.Segments))
	for _, s := range result.Segments {
		if text := strings.TrimSpace(s.Text); text != "" {
			parts = append(parts, text)
		}
	}

	return &Summary{
		Language: result.Language,
		Segments: len(result.Segments),
		Preview:  preview(strings.Join(parts, " ")),
		Model:    t.cfg.ModelName,
	}, nil
}

// Check reports a configuration error when the whisper binary or model is missing
func (t *implTranscriber) Check() error {
	if _, err := t.executor.LookPath(t.cfg.BinaryPath); err != nil {
		return fmt.Errorf("%w: %v", config.ErrMissingTool, err)
	}
	if _, err := os.Stat(t.cfg.ModelPath); err != nil {
		return fmt.Errorf("%w: whisper model %s", config.ErrMissingTool, t.cfg.ModelPath)
	}
	return nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}
