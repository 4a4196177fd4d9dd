package commands

import (
	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/config"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/spf13/cobra"
)

// SetupGlobalFlags configures flags shared by every command
func SetupGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
}

// SetupAttributeFlags configures the flags that feed the attribute pipeline
func SetupAttributeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Global.IPAddress, "ipaddress", "",
		"Host network address (defaults to $SCALARIS_IPADDRESS, then the default-route interface)")
	cmd.Flags().StringVar(&config.Global.OverridesFile, "overrides", "",
		"YAML or JSON file with attribute overrides (flags take precedence)")
	cmd.Flags().StringSliceVar(&config.Global.KnownHosts, "known-host", nil,
		"Seed peer as host:port, repeatable; replaces the default self entry\n"+
			"Set this to an existing node when joining a running ring")
	cmd.Flags().StringVar(&config.Global.MgmtServer, "mgmt-server", "",
		"Management server as host:port (defaults to this host on the peer port)")
	cmd.Flags().IntVar(&config.Global.NodesPerVM, "nodes-per-vm", attributes.DefaultNodesPerVM,
		"Number of logical Scalaris nodes to start on this host")
	cmd.Flags().BoolVar(&config.Global.StartFirst, "start-first", true,
		"Bootstrap a new ring from this host (use --start-first=false to join)")
	cmd.Flags().BoolVar(&config.Global.StartMgmtServer, "start-mgmt-server", true,
		"Also run the management server on this host")
}

// SetupDocumentFlags configures output flags for commands that print documents
func SetupDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&config.Global.Format, "format", "f", config.DefaultFormat,
		"Document format: json, yaml")
	cmd.Flags().BoolVar(&config.Global.AttributesOnly, "attributes-only", false,
		"Print only the attribute record instead of the full REC tree")
}

// SetupFetchFlags configures flags for commands that talk to a running server
func SetupFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Global.APIAddr, "api", config.DefaultAPIAddr,
		"Address of the scalaris-pic API server")
	cmd.Flags().StringVar(&config.Global.User, "user", "",
		"User for servers that restrict access")
	cmd.Flags().StringVar(&config.Global.Password, "password", "",
		"Password for servers that restrict access")
	cmd.Flags().IntVar(&config.Global.Timeout, "timeout", config.DefaultTimeout,
		"Request timeout in seconds")
}

// CheckExplicitFlags records which attribute flags the user set
func CheckExplicitFlags(cmd *cobra.Command) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	config.Global.SetExplicitlySet(config.LogLevelField, changed("log-level"))
	config.Global.SetExplicitlySet(config.KnownHostsField, changed("known-host"))
	config.Global.SetExplicitlySet(config.MgmtServerField, changed("mgmt-server"))
	config.Global.SetExplicitlySet(config.NodesPerVMField, changed("nodes-per-vm"))
	config.Global.SetExplicitlySet(config.StartFirstField, changed("start-first"))
	config.Global.SetExplicitlySet(config.StartMgmtServerField, changed("start-mgmt-server"))
}
