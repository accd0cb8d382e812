package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExtractCommand(a *app) *cobra.Command {
	var (
		output     string
		sampleRate int
	)

	cmd := &cobra.Command{
		Use:   "extract-audio <video>",
		Short: "Extract the audio track of a video as mono WAV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sample-rate") {
				sampleRate = a.cfg.FFmpeg.SampleRate
			}
			if output == "" {
				output = derivedPath(args[0], "_audio.wav")
			}

			ext := a.extractor()
			if err := ext.CheckFFmpeg(); err != nil {
				return err
			}
			if err := ext.Extract(cmd.Context(), args[0], output, sampleRate); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Audio extracted: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output WAV path (default: <stem>_audio.wav)")
	cmd.Flags().IntVar(&sampleRate, "sample-rate", 16000, "audio sample rate in Hz")
	return cmd
}
