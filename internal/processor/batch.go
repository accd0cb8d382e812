package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

// Batch processes every matching file in inputDir one after another. A failed
// item is logged and counted; only an unreadable inputDir fails the batch.
func (p *implProcessor) Batch(ctx context.Context, inputDir, outputDir string, exts []string) (BatchReport, error) {
	if len(exts) == 0 {
		exts = p.cfg.Batch.Extensions
	}

	files, err := discoverFiles(inputDir, exts)
	if err != nil {
		return BatchReport{}, fmt.Errorf("discover input files: %w", err)
	}

	report := BatchReport{Total: len(files)}
	if len(files) == 0 {
		p.logger.Warn(ctx, "No video files found in %s", inputDir)
		return report, nil
	}

	p.logger.Info(ctx, "Found %d files to process", len(files))

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		itemCtx := logger.WithRunID(ctx, uuid.NewString())
		p.logger.Info(itemCtx, "[%d/%d] Processing: %s", i+1, len(files), filepath.Base(path))

		if _, err := p.Process(itemCtx, path, outputDir); err != nil {
			p.logger.Error(itemCtx, "Failed to process %s: %v", path, err)
			report.Failed = append(report.Failed, path)
			continue
		}
		report.Succeeded++
	}

	p.logger.Info(ctx, "Batch complete: %d/%d succeeded", report.Succeeded, report.Total)
	return report, nil
}

// discoverFiles lists regular files in dir whose extension is in exts, sorted by name
func discoverFiles(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if HasExtension(e.Name(), exts) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// HasExtension reports whether name ends in one of exts, case-insensitively.
// Extensions may be given with or without the leading dot.
func HasExtension(name string, exts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, want := range exts {
		if ext == strings.TrimPrefix(strings.ToLower(want), ".") {
			return true
		}
	}
	return false
}
