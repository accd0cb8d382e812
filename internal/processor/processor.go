package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/subtitle"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
)

// Process runs every stage for one video, writing each artifact into
// outputDir before the next stage starts. The first failing stage aborts the
// run with a *StageError.
func (p *implProcessor) Process(ctx context.Context, videoPath, outputDir string) (*Artifacts, error) {
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, uuid.NewString())
	}
	if outputDir == "" {
		outputDir = p.cfg.Paths.Output
	}

	startTime := time.Now()
	stem := Stem(videoPath)
	artifacts := NewArtifacts(outputDir, stem)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing lecture: %s", videoPath)
	p.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &StageError{Stage: StageExtract, Err: fmt.Errorf("create output dir: %w", err)}
	}

	if info, err := p.extractor.Probe(ctx, videoPath); err != nil {
		p.logger.Debug(ctx, "Probe skipped: %v", err)
	} else {
		p.logger.Info(ctx, "Input: %s, %.1fs, audio %s %dHz", info.FormatName, info.Duration, info.AudioCodec, info.SampleRate)
	}

	// Step 1: extract audio
	p.logger.Info(ctx, "Step 1: Extracting audio...")
	if err := p.extractor.Extract(ctx, videoPath, artifacts.Audio, p.cfg.FFmpeg.SampleRate); err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}

	// Step 2: transcribe to subtitles
	p.logger.Info(ctx, "Step 2: Transcribing audio to subtitles...")
	if err := p.transcribe(ctx, artifacts); err != nil {
		return nil, &StageError{Stage: StageTranscribe, Err: err}
	}

	// Step 3: normalize the subtitle text
	p.logger.Info(ctx, "Step 3: Normalizing transcript...")
	processed, err := p.normalize(ctx, artifacts)
	if err != nil {
		return nil, &StageError{Stage: StageNormalize, Err: err}
	}

	// Step 4: generate notes
	p.logger.Info(ctx, "Step 4: Generating notes...")
	if err := p.generate(ctx, processed, stem, artifacts); err != nil {
		return nil, &StageError{Stage: StageGenerate, Err: err}
	}

	if !p.cfg.Output.KeepIntermediates {
		p.cleanupTempFile(ctx, artifacts.Audio)
		p.cleanupTempFile(ctx, artifacts.Subtitles)
		artifacts.Audio = ""
		artifacts.Subtitles = ""
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Notes: %s", artifacts.Notes)
	p.logger.Info(ctx, "Processed text: %s", artifacts.Processed)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return artifacts, nil
}

func (p *implProcessor) transcribe(ctx context.Context, artifacts *Artifacts) error {
	opts := transcriber.Options{WordTimestamps: p.cfg.Whisper.WordTimestamps}
	if opts.WordTimestamps {
		opts.WordsPath = artifacts.Words
	} else {
		artifacts.Words = ""
	}

	result, err := p.transcriber.Transcribe(ctx, artifacts.Audio, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(artifacts.Subtitles, []byte(subtitle.Encode(result.Segments)), 0644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}
	p.logger.Info(ctx, "Subtitles written: %s", artifacts.Subtitles)
	return nil
}

func (p *implProcessor) normalize(ctx context.Context, artifacts *Artifacts) (string, error) {
	data, err := os.ReadFile(artifacts.Subtitles)
	if err != nil {
		return "", fmt.Errorf("read subtitles: %w", err)
	}

	raw := subtitle.Decode(string(data))
	if raw == "" {
		p.logger.Warn(ctx, "No speech detected, continuing with empty text")
	}

	processed := p.normalizer.Normalize(ctx, raw)
	if err := os.WriteFile(artifacts.Processed, []byte(processed), 0644); err != nil {
		return "", fmt.Errorf("write processed text: %w", err)
	}
	p.logger.Info(ctx, "Processed text written: %s", artifacts.Processed)
	return processed, nil
}

func (p *implProcessor) generate(ctx context.Context, processed, stem string, artifacts *Artifacts) error {
	title := "Lecture Notes: " + stem

	if err := p.generator.WriteFile(ctx, processed, title, artifacts.Notes); err != nil {
		return err
	}

	if !p.cfg.Output.Docx {
		artifacts.Docx = ""
		return nil
	}
	if err := p.generator.WriteDocx(processed, title, artifacts.Docx); err != nil {
		return err
	}
	p.logger.Info(ctx, "Word notes written: %s", artifacts.Docx)
	return nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

// Stem is the file name without directory and extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NewArtifacts names every artifact of a run under dir
func NewArtifacts(dir, stem string) *Artifacts {
	prefix := filepath.Join(dir, stem)
	return &Artifacts{
		Audio:     prefix + "_audio.wav",
		Subtitles: prefix + "_subtitles.srt",
		Words:     prefix + "_words.json",
		Processed: prefix + "_processed.txt",
		Notes:     prefix + "_notes.tex",
		Docx:      prefix + "_notes.docx",
	}
}
