package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"speech-summarizer/cmd/v2s/cmd/shared"
	"speech-summarizer/internal/app"
	"speech-summarizer/internal/app/api"
	"speech-summarizer/internal/app/batch"
)

var (
	summarize    bool
	concurrency  int
	showProgress bool
)

func init() {
	Cmd.Flags().BoolVarP(&summarize, "summarize", "s", false, "summarize each transcript")
	Cmd.Flags().IntVarP(&concurrency, "concurrency", "n", batch.DefaultConcurrency, "number of files processed at once")
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "show a progress bar even when stderr is not a terminal")
}

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run <file>...",
	Short: "Transcribe (and optionally summarize) files from the configured bucket",
	Long: `Transcribe files from the configured bucket and print one line per file:

  <file>: <transcript, summary or error>

The command exits with a non-zero status if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := shared.Setup()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		orch, cleanup, err := app.InitializeOrchestrator(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize", zap.Error(err))
			return err
		}
		defer cleanup()

		return Files(ctx, cmd.OutOrStdout(), orch, args, batch.Options{
			Summarize:   summarize,
			Concurrency: concurrency,
			Progress: batch.ProgressConfig{
				Enabled: batch.ShouldShowProgress(showProgress),
				Writer:  cmd.ErrOrStderr(),
			},
		}, logger)
	},
}

// Files runs the batch for files and writes the report to w. It fails if
// any file failed.
func Files(ctx context.Context, w io.Writer, executor api.Executor, files []string, options batch.Options, logger *zap.Logger) error {
	items, err := batch.NewRunner(executor, options, logger).Run(ctx, files)
	if err != nil {
		return err
	}

	failed, err := batch.Report(w, items)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(items))
	}
	return nil
}
