// Package config holds the CLI configuration for scalaris-pic.
//
// Flags bind directly into Global. Values the user set explicitly are tracked
// so that only those become attribute overrides; an untouched flag never
// replaces a default, even when its zero value differs from the default
// (for example --start-first=false versus the default of true).
//
// ATTRIBUTE PIPELINE:
//  1. Resolve the host address (--ipaddress, SCALARIS_IPADDRESS, interface discovery)
//  2. Build the defaults for that address
//  3. Apply the overrides file (--overrides), then explicit flags on top
//  4. Validate the resulting record
package config

import (
	"fmt"

	"github.com/concave-dev/scalaris-pic/internal/api"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/hostaddr"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/validate"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	LogLevelField ConfigField = iota
	KnownHostsField
	MgmtServerField
	NodesPerVMField
	StartFirstField
	StartMgmtServerField
)

const (
	DefaultLogLevel = "INFO"
	DefaultFormat   = "json"
	DefaultTimeout  = 10 // seconds
	DefaultRetries  = 3
)

// DefaultAPIAddr is the default address for serve and fetch
var DefaultAPIAddr = fmt.Sprintf("127.0.0.1:%d", api.DefaultAPIPort)

// Config holds all CLI configuration values
type Config struct {
	LogLevel string // Log level: DEBUG, INFO, WARN, ERROR

	// Attribute inputs
	IPAddress       string   // Explicit host address (skips discovery)
	OverridesFile   string   // YAML/JSON overrides document
	KnownHosts      []string // Seed peers as host:port, replaces the default list
	MgmtServer      string   // Management server as host:port
	NodesPerVM      int      // Logical nodes per host
	StartFirst      bool     // Whether this host bootstraps the cluster
	StartMgmtServer bool     // Whether this host runs the management server

	// Output
	Format         string // json or yaml
	AttributesOnly bool   // Emit the bare record instead of the full tree
	Output         string // fetch only: document (default) or table

	// API
	APIAddr  string // serve: bind address; fetch: server address
	User     string // fetch: basic auth user
	Password string // fetch: basic auth password
	Timeout  int    // fetch: request timeout in seconds
	Remote   bool   // validate: validate through a running server

	explicit map[ConfigField]bool
}

// Global configuration instance
var Global = Config{
	LogLevel: DefaultLogLevel,
	Format:   DefaultFormat,
	APIAddr:  DefaultAPIAddr,
	Timeout:  DefaultTimeout,
}

// SetExplicitlySet marks a configuration field as explicitly set by the user.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	if c.explicit == nil {
		c.explicit = make(map[ConfigField]bool)
	}
	c.explicit[field] = value
}

// IsExplicitlySet returns whether a configuration field was explicitly set by the user.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	return c.explicit[field]
}

// FlagOverrides converts the explicitly set attribute flags into overrides.
// Addresses are parsed and validated here so a bad flag fails before any
// record is built.
func (c *Config) FlagOverrides() (attributes.Overrides, error) {
	var o attributes.Overrides

	if c.IsExplicitlySet(KnownHostsField) {
		if err := validate.ValidateAddressList(c.KnownHosts); err != nil {
			return o, fmt.Errorf("invalid --known-host: %w", err)
		}
		hosts := make([]attributes.HostPort, 0, len(c.KnownHosts))
		for _, h := range c.KnownHosts {
			addr, _ := validate.ParseBindAddress(h)
			hosts = append(hosts, attributes.HostPort{IP4: addr.Host, Port: addr.Port})
		}
		o.KnownHosts = hosts
	}

	if c.IsExplicitlySet(MgmtServerField) {
		addr, err := validate.ParseBindAddress(c.MgmtServer)
		if err != nil {
			return o, fmt.Errorf("invalid --mgmt-server: %w", err)
		}
		o.MgmtServer = &attributes.HostPort{IP4: addr.Host, Port: addr.Port}
	}

	if c.IsExplicitlySet(NodesPerVMField) {
		if err := validate.ValidatePositive(c.NodesPerVM, "--nodes-per-vm"); err != nil {
			return o, err
		}
		n := c.NodesPerVM
		o.NodesPerVM = &n
	}

	if c.IsExplicitlySet(StartFirstField) {
		v := c.StartFirst
		o.StartFirst = &v
	}

	if c.IsExplicitlySet(StartMgmtServerField) {
		v := c.StartMgmtServer
		o.StartMgmtServer = &v
	}

	return o, nil
}

// ResolveAddress returns the host address from --ipaddress, then
// SCALARIS_IPADDRESS, then interface discovery.
func (c *Config) ResolveAddress() (string, error) {
	explicit := c.IPAddress
	if explicit == "" {
		explicit = hostaddr.FromEnv()
	}
	return hostaddr.Resolve(explicit)
}

// BuildAttributes runs the attribute pipeline and returns a validated record.
func (c *Config) BuildAttributes() (attributes.NodeDefaultConfig, error) {
	addr, err := c.ResolveAddress()
	if err != nil {
		return attributes.NodeDefaultConfig{}, err
	}
	logging.Debug("Building attributes for host address %s", addr)

	var overrides attributes.Overrides
	if c.OverridesFile != "" {
		fileOverrides, err := attributes.LoadOverrides(c.OverridesFile)
		if err != nil {
			return attributes.NodeDefaultConfig{}, err
		}
		overrides = fileOverrides
		logging.Debug("Loaded overrides from %s", c.OverridesFile)
	}

	flagOverrides, err := c.FlagOverrides()
	if err != nil {
		return attributes.NodeDefaultConfig{}, err
	}
	overrides = overrides.Merge(flagOverrides)

	cfg := attributes.Defaults(addr)
	if !overrides.IsZero() {
		cfg = cfg.Apply(overrides)
	}

	if err := cfg.Validate(); err != nil {
		return attributes.NodeDefaultConfig{}, err
	}
	return cfg, nil
}
