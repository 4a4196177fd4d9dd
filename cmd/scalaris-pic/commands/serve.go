package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/config"
	"github.com/concave-dev/scalaris-pic/internal/api"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/validate"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Publish the attribute tree over HTTP",
	Long: `Build the attribute record for this host once and serve it until SIGINT or
SIGTERM. When the record carries a user list, attribute routes require HTTP
basic auth from that list; an empty list leaves them open.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{daemonAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

// runServe starts the server and blocks until ctx is done
func runServe(ctx context.Context) error {
	cfg, err := config.Global.BuildAttributes()
	if err != nil {
		return err
	}

	bind, err := validate.ParseBindAddress(config.Global.APIAddr)
	if err != nil {
		return err
	}

	apiConfig := api.DefaultConfig()
	apiConfig.BindAddr = bind.Host
	apiConfig.BindPort = bind.Port
	apiConfig.Attributes = &cfg
	if err := apiConfig.Validate(); err != nil {
		return err
	}

	if cfg.Unrestricted() {
		logging.Warn("No scalaris_users configured, attribute routes are unrestricted")
	}

	logging.RedirectStandardLog(logging.NewLevelWriter("ERROR", "http"))

	server := api.NewServer(apiConfig)
	if err := server.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	logging.Info("Shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Failed to shut down HTTP API server: %v", err)
		return err
	}

	logging.Success("Shutdown complete")
	return nil
}
