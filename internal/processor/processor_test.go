package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/media"
	"github.com/nguyentantai21042004/lecture-notes/internal/notes"
	"github.com/nguyentantai21042004/lecture-notes/internal/subtitle"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
)

type fakeExtractor struct {
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, videoPath, audioPath string, _ int) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if strings.Contains(videoPath, "broken") {
		return errors.New("ffmpeg: invalid data")
	}
	return os.WriteFile(audioPath, []byte("RIFF"), 0644)
}

func (f *fakeExtractor) Probe(context.Context, string) (*media.Info, error) {
	return nil, errors.New("no ffprobe")
}

func (f *fakeExtractor) CheckFFmpeg() error { return nil }

type fakeTranscriber struct {
	segments []subtitle.Segment
	err      error
	opts     transcriber.Options
	runIDs   []string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, _ string, opts transcriber.Options) (*transcriber.Result, error) {
	f.opts = opts
	f.runIDs = append(f.runIDs, logger.RunID(ctx))
	if f.err != nil {
		return nil, f.err
	}
	if opts.WordsPath != "" {
		if err := os.WriteFile(opts.WordsPath, []byte(`{}`), 0644); err != nil {
			return nil, err
		}
	}
	return &transcriber.Result{Segments: f.segments, Language: "en"}, nil
}

func (f *fakeTranscriber) Info(context.Context, string, transcriber.Options) (*transcriber.Summary, error) {
	return nil, nil
}

func (f *fakeTranscriber) Check() error { return nil }

// upperNormalizer records what it was given
type upperNormalizer struct {
	input string
}

func (n *upperNormalizer) Normalize(_ context.Context, text string) string {
	n.input = text
	return strings.ToUpper(text)
}

type fixture struct {
	cfg         *config.Config
	extractor   *fakeExtractor
	transcriber *fakeTranscriber
	normalizer  *upperNormalizer
	processor   Processor
	dir         string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gen, err := notes.New(notes.Options{})
	if err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		cfg:       config.Default(),
		extractor: &fakeExtractor{},
		transcriber: &fakeTranscriber{segments: []subtitle.Segment{
			{Start: 0, End: 1.5, Text: "hello"},
			{Start: 1.5, End: 3.25, Text: ""},
			{Start: 3.25, End: 4, Text: "world"},
		}},
		normalizer: &upperNormalizer{},
		dir:        t.TempDir(),
	}
	f.processor = New(f.cfg, Dependencies{
		Extractor:   f.extractor,
		Transcriber: f.transcriber,
		Normalizer:  f.normalizer,
		Generator:   gen,
	}, logger.Nop())
	return f
}

func (f *fixture) video(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestProcess(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.dir, "out")

	artifacts, err := f.processor.Process(context.Background(), f.video(t, "calculus.mp4"), out)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if f.normalizer.input != "hello world" {
		t.Errorf("normalizer input = %q, want decoded subtitles", f.normalizer.input)
	}

	processed, err := os.ReadFile(filepath.Join(out, "calculus_processed.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(processed) != "HELLO WORLD" {
		t.Errorf("processed text = %q", processed)
	}

	doc, err := os.ReadFile(artifacts.Notes)
	if err != nil {
		t.Fatal(err)
	}
	if artifacts.Notes != filepath.Join(out, "calculus_notes.tex") {
		t.Errorf("Notes = %q", artifacts.Notes)
	}
	if !strings.Contains(string(doc), `\title{Lecture Notes: calculus}`) {
		t.Errorf("notes missing title:\n%s", doc)
	}

	for _, name := range []string{"calculus_audio.wav", "calculus_subtitles.srt", "calculus_words.json", "calculus_notes.docx"} {
		if exists(filepath.Join(out, name)) {
			t.Errorf("%s should not remain", name)
		}
	}
	if artifacts.Audio != "" || artifacts.Subtitles != "" {
		t.Errorf("removed intermediates still listed: %+v", artifacts)
	}
	if len(f.transcriber.runIDs) != 1 || f.transcriber.runIDs[0] == "" {
		t.Error("run should carry a run id")
	}
}

func TestProcessKeepIntermediates(t *testing.T) {
	f := newFixture(t)
	f.cfg.Output.KeepIntermediates = true
	f.cfg.Output.Docx = true
	f.cfg.Whisper.WordTimestamps = true

	artifacts, err := f.processor.Process(context.Background(), f.video(t, "lecture.mov"), f.dir)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, path := range []string{artifacts.Audio, artifacts.Subtitles, artifacts.Words, artifacts.Processed, artifacts.Notes, artifacts.Docx} {
		if !exists(path) {
			t.Errorf("%s missing", path)
		}
	}

	srt, err := os.ReadFile(artifacts.Subtitles)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:00:00,000 --> 00:00:01,500\nhello\n\n2\n00:00:03,250 --> 00:00:04,000\nworld\n\n"
	if string(srt) != want {
		t.Errorf("subtitles = %q, want %q", srt, want)
	}
	if f.transcriber.opts.WordsPath != artifacts.Words {
		t.Errorf("words path = %q", f.transcriber.opts.WordsPath)
	}
}

func TestProcessNoSpeech(t *testing.T) {
	f := newFixture(t)
	f.transcriber.segments = nil

	artifacts, err := f.processor.Process(context.Background(), f.video(t, "silent.mp4"), f.dir)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	doc, err := os.ReadFile(artifacts.Notes)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc) == 0 || strings.Contains(string(doc), `\section`) {
		t.Errorf("empty transcript should give a non-empty document without sections:\n%s", doc)
	}
}

func TestProcessStageErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		video string
		stage Stage
	}{
		{
			name:  "extract",
			setup: func(f *fixture) { f.extractor.err = media.ErrInputNotFound },
			video: "a.mp4",
			stage: StageExtract,
		},
		{
			name:  "transcribe",
			setup: func(f *fixture) { f.transcriber.err = errors.New("whisper crashed") },
			video: "b.mp4",
			stage: StageTranscribe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.processor.Process(context.Background(), f.video(t, tt.video), f.dir)

			var stageErr *StageError
			if !errors.As(err, &stageErr) {
				t.Fatalf("Process() error = %v, want *StageError", err)
			}
			if stageErr.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", stageErr.Stage, tt.stage)
			}
			if exists(filepath.Join(f.dir, Stem(tt.video)+"_notes.tex")) {
				t.Error("later stages should not run after a failure")
			}
		})
	}
}

func TestStageErrorUnwrap(t *testing.T) {
	err := error(&StageError{Stage: StageExtract, Err: media.ErrInputNotFound})
	if !errors.Is(err, media.ErrInputNotFound) {
		t.Error("StageError should unwrap to its cause")
	}
	if err.Error() != "extract stage: input file not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestBatch(t *testing.T) {
	f := newFixture(t)
	in := filepath.Join(f.dir, "in")
	if err := os.Mkdir(in, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.mp4", "broken.MKV", "c.avi", "notes.txt", ".hidden.mp4"} {
		if err := os.WriteFile(filepath.Join(in, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := f.processor.Batch(context.Background(), in, filepath.Join(f.dir, "out"), []string{"mp4", ".mkv", "avi"})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}

	if report.Total != 3 || report.Succeeded != 2 {
		t.Errorf("report = %+v, want 2/3", report)
	}
	if len(report.Failed) != 1 || filepath.Base(report.Failed[0]) != "broken.MKV" {
		t.Errorf("Failed = %q", report.Failed)
	}
	if !exists(filepath.Join(f.dir, "out", "c_notes.tex")) {
		t.Error("batch should continue after a failing item")
	}

	ids := f.transcriber.runIDs
	if len(ids) != 2 || ids[0] == ids[1] {
		t.Errorf("each item should get its own run id, got %q", ids)
	}
}

func TestBatchMissingDir(t *testing.T) {
	f := newFixture(t)
	if _, err := f.processor.Batch(context.Background(), filepath.Join(f.dir, "missing"), f.dir, nil); err == nil {
		t.Error("Batch() on a missing directory should fail")
	}
}

func TestBatchEmptyDir(t *testing.T) {
	f := newFixture(t)
	report, err := f.processor.Batch(context.Background(), t.TempDir(), f.dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 0 || report.Succeeded != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestHasExtension(t *testing.T) {
	exts := []string{"mp4", ".MOV"}
	tests := []struct {
		name string
		want bool
	}{
		{"a.mp4", true},
		{"a.MP4", true},
		{"a.mov", true},
		{"a.mkv", false},
		{"mp4", false},
	}
	for _, tt := range tests {
		if got := HasExtension(tt.name, exts); got != tt.want {
			t.Errorf("HasExtension(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
