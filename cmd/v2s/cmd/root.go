package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"speech-summarizer/cmd/v2s/cmd/run"
	"speech-summarizer/cmd/v2s/cmd/serve"
	"speech-summarizer/cmd/v2s/cmd/shared"
	"speech-summarizer/cmd/v2s/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "v2s",
	Short: "Transcribe audio stored in Google Cloud Storage and summarize the transcript",
	Long: `Transcribe audio stored in Google Cloud Storage and summarize the transcript.
- Audio is addressed as gs://<BUCKET_NAME>/<file>, nothing is uploaded
- Transcription uses Google Speech-to-Text long-running recognition
- Summaries come from OpenAI or Gemini, driven by DIALOGUE_PROMPT`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&shared.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&shared.ConfigFile, "config", "c", "", "optional YAML config file, overridden by environment variables")
}
