package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cn7-transcriptor/cmd/cn7/cmd/common"
	"cn7-transcriptor/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	host string
	port int
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription HTTP API",
	Long: `Run the transcription HTTP API

- Sessions hold one selected file, its preview and the transcription state
- Files are validated by declared MIME type before anything is sent
- Prometheus metrics are served at /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := common.Bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.Logger.Sync()

		if host != "" {
			rt.Config.Server.Host = host
		}
		if port != 0 {
			rt.Config.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := app.InitializeServer(ctx, rt.Config, rt.Keys, rt.Logger)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case err := <-srv.Errors():
			return err
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), rt.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			rt.Logger.Warn("shutdown incomplete", zap.Error(err))
			return err
		}
		return nil
	},
}
