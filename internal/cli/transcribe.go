package cli

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/lecture-notes/internal/subtitle"
	"github.com/nguyentantai21042004/lecture-notes/internal/transcriber"
	"github.com/spf13/cobra"
)

func newTranscribeCommand(a *app) *cobra.Command {
	var (
		output         string
		language       string
		model          string
		textOnly       bool
		info           bool
		wordTimestamps bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio>",
		Short: "Transcribe audio to an SRT subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			audioPath := args[0]

			if model != "" {
				a.cfg.Whisper.ModelPath = model
			}
			tr := a.transcriber()
			if err := tr.Check(); err != nil {
				return err
			}

			opts := transcriber.Options{Language: language}

			if info {
				summary, err := tr.Info(ctx, audioPath, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "=== Transcription info ===")
				fmt.Fprintf(out, "language: %s\n", summary.Language)
				fmt.Fprintf(out, "segments: %d\n", summary.Segments)
				fmt.Fprintf(out, "text_preview: %s\n", summary.Preview)
				fmt.Fprintf(out, "model_used: %s\n", summary.Model)
				return nil
			}

			if output == "" {
				output = derivedPath(audioPath, ".srt")
			}
			if wordTimestamps || a.cfg.Whisper.WordTimestamps {
				opts.WordTimestamps = true
				opts.WordsPath = trimExt(output) + "_words.json"
			}

			result, err := tr.Transcribe(ctx, audioPath, opts)
			if err != nil {
				return err
			}

			srt := subtitle.Encode(result.Segments)
			if err := os.WriteFile(output, []byte(srt), 0644); err != nil {
				return fmt.Errorf("write subtitles: %w", err)
			}

			if textOnly {
				fmt.Fprintln(out, "=== Transcript ===")
				fmt.Fprintln(out, subtitle.Decode(srt))
				return nil
			}
			fmt.Fprintf(out, "Transcription written: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SRT path (default: <stem>.srt)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "spoken language code, empty for auto-detect")
	cmd.Flags().StringVarP(&model, "model", "m", "", "whisper.cpp model file (default: whisper.model_path)")
	cmd.Flags().BoolVar(&textOnly, "text-only", false, "print the plain transcript")
	cmd.Flags().BoolVar(&info, "info", false, "print language, segment count and a preview, write nothing")
	cmd.Flags().BoolVar(&wordTimestamps, "word-timestamps", false, "save word-level timings as JSON")
	return cmd
}
