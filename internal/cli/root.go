// Package cli wires the pipeline components into the lecture-notes command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-notes/internal/config"
	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/pkg/executor"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

// app carries what every subcommand shares, resolved once before it runs
type app struct {
	configPath string
	envFile    string
	verbose    bool

	cfg      *config.Config
	log      logger.Logger
	executor executor.Executor
}

// NewRootCommand builds the command tree. exec is the subprocess runner used
// for ffmpeg and whisper.
func NewRootCommand(exec executor.Executor) *cobra.Command {
	a := &app{executor: exec}

	root := &cobra.Command{
		Use:   "lecture-notes",
		Short: "Turn recorded lectures into LaTeX notes",
		Long: `lecture-notes extracts the audio track of a lecture video, transcribes it
with whisper.cpp, cleans the transcript into topic paragraphs and writes LaTeX
notes, authored by a language model when a credential is configured and from a
built-in template otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath, "path to config.yaml")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with API keys")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newProcessCommand(a),
		newExtractCommand(a),
		newTranscribeCommand(a),
		newNormalizeCommand(a),
		newGenerateCommand(a),
		newBatchCommand(a),
		newWatchCommand(a),
	)
	return root
}

// Execute runs the command tree with args from the process
func Execute(ctx context.Context) error {
	return NewRootCommand(executor.New()).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	// An explicit --config must exist; the default path is optional.
	allowMissing := !cmd.Flags().Changed("config")

	cfg, err := config.Load(a.configPath, allowMissing)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.LoadEnv(a.envFile); err != nil {
		return err
	}

	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	a.cfg = cfg
	a.log = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	return nil
}
