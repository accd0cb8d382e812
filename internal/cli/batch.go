package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBatchCommand(a *app) *cobra.Command {
	var (
		output            string
		extensions        string
		language          string
		keepIntermediates bool
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Process every lecture video in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("language") {
				a.cfg.Whisper.Language = language
			}
			if cmd.Flags().Changed("keep-intermediates") {
				a.cfg.Output.KeepIntermediates = keepIntermediates
			}

			exts := a.cfg.Batch.Extensions
			if extensions != "" {
				exts = splitList(extensions)
			}

			proc, err := a.pipeline(cmd.Context())
			if err != nil {
				return err
			}

			report, err := proc.Batch(cmd.Context(), args[0], output, exts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, failed := range report.Failed {
				fmt.Fprintf(out, "Failed: %s\n", failed)
			}
			fmt.Fprintf(out, "Batch complete: %d/%d files succeeded\n", report.Succeeded, report.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "batch_output", "output directory")
	cmd.Flags().StringVar(&extensions, "extensions", "", "comma-separated video extensions (default: batch.extensions)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "spoken language code, empty for auto-detect")
	cmd.Flags().BoolVar(&keepIntermediates, "keep-intermediates", false, "keep the extracted audio and subtitles")
	return cmd
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
