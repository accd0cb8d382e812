package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProcessCommand(a *app) *cobra.Command {
	var (
		output            string
		language          string
		keepIntermediates bool
		docx              bool
		wordTimestamps    bool
	)

	cmd := &cobra.Command{
		Use:   "process <video>",
		Short: "Run the full pipeline on one lecture video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("language") {
				a.cfg.Whisper.Language = language
			}
			if flags.Changed("keep-intermediates") {
				a.cfg.Output.KeepIntermediates = keepIntermediates
			}
			if flags.Changed("docx") {
				a.cfg.Output.Docx = docx
			}
			if flags.Changed("word-timestamps") {
				a.cfg.Whisper.WordTimestamps = wordTimestamps
			}

			proc, err := a.pipeline(cmd.Context())
			if err != nil {
				return err
			}

			artifacts, err := proc.Process(cmd.Context(), args[0], output)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Notes written: %s\n", artifacts.Notes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: paths.output)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "spoken language code, empty for auto-detect")
	cmd.Flags().BoolVar(&keepIntermediates, "keep-intermediates", false, "keep the extracted audio and subtitles")
	cmd.Flags().BoolVar(&docx, "docx", false, "also write the notes as a Word document")
	cmd.Flags().BoolVar(&wordTimestamps, "word-timestamps", false, "save word-level timings as JSON")
	return cmd
}
