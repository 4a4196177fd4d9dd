// Package commands provides the CLI command tree for scalaris-pic.
//
// COMMAND STRUCTURE:
//   - render: Print the default attribute tree for this host
//   - validate: Check a tree or bare record from a file
//   - serve: Publish the attribute tree over HTTP
//   - fetch: Read the attribute tree from a running server
//
// Document commands (render, validate, fetch) keep stdout for their output and
// send logs to stderr. serve logs like a daemon.
package commands

import (
	"os"

	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/config"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/version"
	"github.com/spf13/cobra"
)

// daemonAnnotation marks commands that log like a long running service
const daemonAnnotation = "daemon"

// Root command
var RootCmd = &cobra.Command{
	Use:   "scalaris-pic",
	Short: "Default attributes for Scalaris deployment targets",
	Long: `scalaris-pic builds the default attribute record for a Scalaris node:
ports, node name, bootstrap peers, request size limit and user access list.

The node name and peer addresses derive from the host's network address,
taken from --ipaddress, SCALARIS_IPADDRESS, or the default-route interface.`,
	Version:      version.Version,
	SilenceUsage: true,
	Example: `  # Print the attribute tree for this host
  scalaris-pic render

  # Join an existing ring instead of bootstrapping one
  scalaris-pic render --start-first=false --known-host=10.0.0.5:14195

  # Publish the tree for configuration engines
  scalaris-pic serve --api=0.0.0.0:8008

  # Read it back from another host
  scalaris-pic fetch --api=10.0.0.5:8008 -o table`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		CheckExplicitFlags(cmd)
		config.InitializeConfig()
		if err := config.ValidateConfig(); err != nil {
			return err
		}
		SetupLogging(cmd)
		return nil
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupGlobalFlags(RootCmd)

	SetupAttributeFlags(renderCmd)
	SetupDocumentFlags(renderCmd)

	SetupAttributeFlags(serveCmd)
	serveCmd.Flags().StringVar(&config.Global.APIAddr, "api", config.DefaultAPIAddr,
		"Address and port to serve the API on (e.g., 0.0.0.0:8008)")

	SetupDocumentFlags(fetchCmd)
	SetupFetchFlags(fetchCmd)
	fetchCmd.Flags().StringVarP(&config.Global.Output, "output", "o", "",
		"Output: document (default) or table")

	validateCmd.Flags().BoolVar(&config.Global.Remote, "remote", false,
		"Validate through a running server instead of locally")
	SetupFetchFlags(validateCmd)

	RootCmd.AddCommand(renderCmd, validateCmd, serveCmd, fetchCmd)
}

// SetupLogging configures logging for the command about to run. Document
// commands route all logs to stderr and only show errors unless a level was
// requested; serve uses Unix conventions at the configured level.
func SetupLogging(cmd *cobra.Command) {
	if _, ok := cmd.Annotations[daemonAnnotation]; ok {
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
		return
	}

	logging.SetOutput(os.Stderr)
	if config.Global.IsExplicitlySet(config.LogLevelField) {
		logging.SetLevel(config.Global.LogLevel)
		return
	}
	logging.SuppressOutput()
}
