package cli

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/spf13/cobra"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		output       string
		title        string
		provider     string
		model        string
		apiKey       string
		templateOnly bool
		docx         bool
	)

	cmd := &cobra.Command{
		Use:   "generate <text>",
		Short: "Write LaTeX notes from normalized text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			textPath := args[0]

			if provider != "" {
				a.cfg.Authoring.Provider = provider
				// Validate picks the provider's default model
				a.cfg.Authoring.Model = ""
			}
			if model != "" {
				a.cfg.Authoring.Model = model
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if apiKey != "" {
				setAPIKey(a.cfg, apiKey)
			}

			data, err := os.ReadFile(textPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			gen, err := a.generator(ctx, templateOnly)
			if err != nil {
				return err
			}

			if output == "" {
				output = derivedPath(textPath, "_notes.tex")
			}
			if err := gen.WriteFile(ctx, string(data), title, output); err != nil {
				return err
			}
			fmt.Fprintf(out, "LaTeX notes written: %s\n", output)

			if docx {
				docxPath := trimExt(output) + ".docx"
				if err := gen.WriteDocx(string(data), title, docxPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "Word notes written: %s\n", docxPath)
			}

			fmt.Fprintln(out, "\nCompile with:")
			fmt.Fprintf(out, "  pdflatex %s\n", output)
			fmt.Fprintf(out, "  xelatex %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <stem>_notes.tex)")
	cmd.Flags().StringVar(&title, "title", "Lecture Notes", "document title")
	cmd.Flags().StringVar(&provider, "provider", "", "authoring provider: deepseek, openai, gemini, none")
	cmd.Flags().StringVar(&model, "model", "", "authoring model")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the provider (default: from the environment)")
	cmd.Flags().BoolVar(&templateOnly, "template-only", false, "skip remote authoring and use the template")
	cmd.Flags().BoolVar(&docx, "docx", false, "also write a Word document")
	return cmd
}

// setAPIKey overrides the credential of the configured provider
func setAPIKey(cfg *config.Config, key string) {
	switch cfg.Authoring.Provider {
	case config.ProviderOpenAI:
		cfg.Credentials.OpenAIKey = key
	case config.ProviderGemini:
		cfg.Credentials.GeminiKeys = []string{key}
	default:
		cfg.Credentials.DeepSeekKey = key
	}
}
