// Package api provides the HTTP API server configuration for scalaris-pic.
//
// The server publishes one attribute record, built before the server starts,
// to configuration engines and operators. Validation ensures the bind address
// is usable and the record itself is valid before anything is served.
package api

import (
	"fmt"

	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/validate"
)

const (
	// DefaultAPIPort is the default port for HTTP API server
	DefaultAPIPort = 8008
)

// Config holds the parameters required to run the HTTP API server.
type Config struct {
	BindAddr   string                        // HTTP server bind address (e.g., "0.0.0.0")
	BindPort   int                           // HTTP server bind port
	Attributes *attributes.NodeDefaultConfig // Record to publish; must be set by caller
}

// DefaultConfig creates a Config bound to loopback on the default port. The
// attribute record must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:   "127.0.0.1",
		BindPort:   DefaultAPIPort,
		Attributes: nil,
	}
}

// Validate checks the bind address and port and validates the record that
// will be served, so an invalid record is never published.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidateIP(c.BindAddr); err != nil {
		return fmt.Errorf("bind address validation failed: %w", err)
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.Attributes == nil {
		return fmt.Errorf("attributes cannot be nil")
	}
	if err := c.Attributes.Validate(); err != nil {
		return fmt.Errorf("attributes validation failed: %w", err)
	}

	return nil
}
