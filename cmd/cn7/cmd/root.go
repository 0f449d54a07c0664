package cmd

import (
	"os"

	"cn7-transcriptor/cmd/cn7/cmd/common"
	"cn7-transcriptor/cmd/cn7/cmd/formats"
	"cn7-transcriptor/cmd/cn7/cmd/serve"
	"cn7-transcriptor/cmd/cn7/cmd/transcribe"
	"cn7-transcriptor/cmd/cn7/cmd/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cn7",
	Short: "Transcribes audio and video files with a generative model",
	Long: `Transcribes one audio or video file at a time into a timestamped,
speaker-labelled Portuguese transcript.

- cn7 serve runs the HTTP API used by the browser page
- cn7 transcribe converts a local file and writes CN7_TRANSCRICAO.txt`,
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
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(formats.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&common.ConfigPath, "config", "c", "",
		"config file (default is $CN7_CONFIG, then built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&common.Verbose, "verbose", "V", false, "verbose output")
}
