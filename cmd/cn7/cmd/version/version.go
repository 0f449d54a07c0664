package version

import (
	"fmt"

	"cn7-transcriptor/internal/app/api/gemini"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cn7",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (prompt %s)\n", version, gemini.PromptVersion)
		return nil
	},
}
