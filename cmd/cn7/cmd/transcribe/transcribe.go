package transcribe

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cn7-transcriptor/cmd/cn7/cmd/common"
	"cn7-transcriptor/internal/app"
	"cn7-transcriptor/internal/app/converter"
	"cn7-transcriptor/internal/app/errors"
	"github.com/spf13/cobra"
)

var (
	output       string
	mimeType     string
	toStdout     bool
	showProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "",
		"file or directory for the transcript (default ./CN7_TRANSCRICAO.txt)")
	Cmd.Flags().StringVarP(&mimeType, "mime-type", "m", "",
		"declared MIME type, example: audio/mp3 (default derived from the extension)")
	Cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the transcript instead of writing a file")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "show the spinner even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe one local audio or video file",
	Long: `Transcribe one local audio or video file

- The declared type must be one of the accepted formats (see cn7 formats)
- The transcript is written as CN7_TRANSCRICAO.txt unless --stdout is given`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := common.Bootstrap(true)
		if err != nil {
			return err
		}
		defer rt.Logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		progress := converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(showProgress),
			Writer:  os.Stderr,
		}
		conv, err := app.InitializeConverter(ctx, rt.Config, rt.Keys, rt.Logger, progress)
		if err != nil {
			return err
		}

		result, err := conv.Do(ctx, args[0], converter.Options{
			MIMEType:  mimeType,
			Output:    output,
			SkipWrite: toStdout,
			MaxBytes:  rt.Config.MaxUploadBytes(),
		})
		if err != nil {
			return errors.New(errors.UserMessage(err))
		}

		if toStdout {
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✅ %s -> %s\n", result.File.Name, result.OutputPath)
		return nil
	},
}
