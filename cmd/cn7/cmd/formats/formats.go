package formats

import (
	"fmt"

	"cn7-transcriptor/internal/app/media"
	"cn7-transcriptor/internal/app/model"
	"github.com/spf13/cobra"
)

// Cmd represents the formats command
var Cmd = &cobra.Command{
	Use:   "formats",
	Short: "List the accepted media types",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range media.AllowedMIMETypes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", t, model.KindFromMIMEType(t))
		}
		return nil
	},
}
