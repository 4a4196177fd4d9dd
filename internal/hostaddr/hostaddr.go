// Package hostaddr resolves the network address a host advertises to its
// peers. The address is what the attribute defaults are derived from.
//
// Resolution order:
//  1. an explicit address (flag or SCALARIS_IPADDRESS), which must be an IP literal
//  2. the private address on the default-route interface
//  3. the public address on the default-route interface
//  4. the IPv4 loopback, with a warning
//
// Interface discovery uses hashicorp/go-sockaddr, the same library Serf and
// memberlist use to pick an advertise address.
package hostaddr

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/validate"
	sockaddr "github.com/hashicorp/go-sockaddr"
)

const (
	// EnvIPAddress overrides interface discovery when set
	EnvIPAddress = "SCALARIS_IPADDRESS"

	// Loopback is used when no routable address can be found
	Loopback = "127.0.0.1"
)

// ErrInvalidAddress is returned when an explicit address is not an IP literal.
var ErrInvalidAddress = errors.New("invalid host address")

// Discovery hooks, replaced in tests.
var (
	privateIPFunc = sockaddr.GetPrivateIP
	publicIPFunc  = sockaddr.GetPublicIP
)

// FromEnv returns the explicit address from SCALARIS_IPADDRESS, or "".
func FromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvIPAddress))
}

// Resolve returns the host's network address. A non-empty explicit address is
// validated and returned as is; otherwise the address is discovered.
func Resolve(explicit string) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if err := validate.ValidateIP(explicit); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
		}
		logging.Debug("Using explicit host address %s", explicit)
		return explicit, nil
	}

	if ip := discover("private", privateIPFunc); ip != "" {
		return ip, nil
	}
	if ip := discover("public", publicIPFunc); ip != "" {
		return ip, nil
	}

	logging.Warn("No routable host address found, falling back to %s", Loopback)
	return Loopback, nil
}

// discover runs one lookup and returns the first valid IP it reports.
func discover(kind string, lookup func() (string, error)) string {
	out, err := lookup()
	if err != nil {
		logging.Debug("Failed to discover %s host address: %v", kind, err)
		return ""
	}

	for _, candidate := range strings.Fields(out) {
		if validate.ValidateIP(candidate) == nil {
			logging.Debug("Discovered %s host address %s", kind, candidate)
			return candidate
		}
	}
	return ""
}
