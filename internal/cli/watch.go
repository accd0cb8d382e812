package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process lecture videos as they appear in paths.input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := a.cfg

			for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			proc, err := a.pipeline(ctx)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, path string) error {
				ctx = logger.WithRunID(ctx, uuid.NewString())
				_, err := proc.Process(ctx, path, cfg.Paths.Output)
				return err
			}

			w, err := watcher.New(watcher.Options{
				InputDir:      cfg.Paths.Input,
				Extensions:    cfg.Batch.Extensions,
				MaxConcurrent: cfg.Performance.MaxConcurrent,
			}, handler, a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "Lecture notes watcher is ready!")
			a.log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			a.log.Info(ctx, "Output: %s", cfg.Paths.Output)
			a.log.Info(ctx, "Press Ctrl+C to stop")
			a.log.Info(ctx, "========================================")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info(ctx, "Watcher stopped")
			return nil
		},
	}
}
