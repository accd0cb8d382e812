package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/lecture-notes/internal/subtitle"
	"github.com/spf13/cobra"
)

const previewLength = 500

func newNormalizeCommand(a *app) *cobra.Command {
	var (
		output  string
		fromSRT bool
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <text|srt>",
		Short: "Clean a transcript into topic paragraphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			out := cmd.OutOrStdout()

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			raw := string(data)
			if fromSRT || strings.EqualFold(filepath.Ext(inputPath), ".srt") {
				raw = subtitle.Decode(raw)
			}

			norm, err := a.normalizer()
			if err != nil {
				return err
			}
			processed := norm.Normalize(cmd.Context(), raw)

			if preview {
				fmt.Fprintln(out, "=== Processed text preview ===")
				fmt.Fprintln(out, truncate(processed, previewLength))
				fmt.Fprintf(out, "\nText length: %d characters\n", utf8.RuneCountInString(processed))
				return nil
			}

			if output == "" {
				output = derivedPath(inputPath, "_processed.txt")
			}
			if err := os.WriteFile(output, []byte(processed), 0644); err != nil {
				return fmt.Errorf("write processed text: %w", err)
			}

			fmt.Fprintf(out, "Text processed: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <stem>_processed.txt)")
	cmd.Flags().BoolVar(&fromSRT, "from-srt", false, "treat the input as SRT regardless of extension")
	cmd.Flags().BoolVar(&preview, "preview", false, "print the first 500 characters instead of writing a file")
	return cmd
}
