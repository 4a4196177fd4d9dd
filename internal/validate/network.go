// Package validate provides network validation utilities for scalaris-pic,
// ensuring addresses and ports in attribute records are usable by peers.
//
// Implements IP address, port range, and address format validation using the
// go-playground/validator library.
//
// VALIDATION FEATURES:
//   - IP Address: IPv4 and IPv6 format validation
//   - Port Range: Valid port numbers (1-65535)
//   - Address Lists: Multiple "host:port" seed addresses
//   - Format: Proper "host:port" address formatting
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress represents a validated network address with host and port
// components. Struct tags drive validation via go-playground/validator.
type NetworkAddress struct {
	Host string `validate:"required,ip"`
	Port int    `validate:"required,min=1,max=65535"`
}

// String returns the network address in "host:port" format.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses and validates a "host:port" address string. The
// host must be an IP literal and the port must be in 1-65535.
//
// Used for the --api, --known-host and --mgmt-server flags, where a port of 0
// would produce an attribute record peers cannot connect to.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates a single value against validator tags.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct validates a struct using its `validate` tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidateIP validates that addr is a non-empty IPv4 or IPv6 literal.
//
// Used for --ipaddress, SCALARIS_IPADDRESS and the API bind address. Hostnames
// are rejected: the value ends up in scalaris_node and the ip4 fields, which
// peers dial without a resolver.
func ValidateIP(addr string) error {
	if err := ValidateField(addr, "required,ip"); err != nil {
		return fmt.Errorf("invalid IP address '%s'", addr)
	}
	return nil
}

// ValidateAddressList validates multiple "host:port" addresses. The list must
// not be empty; the first bad entry is reported with its index.
//
// Essential for --known-host, where one bad seed would leave a joining node
// unable to reach the ring. Each entry goes through ParseBindAddress, so the
// same IP-literal and port rules apply.
func ValidateAddressList(addresses []string) error {
	if len(addresses) == 0 {
		return fmt.Errorf("address list cannot be empty")
	}

	for i, addr := range addresses {
		if _, err := ParseBindAddress(addr); err != nil {
			return fmt.Errorf("invalid address at index %d: %w", i, err)
		}
	}

	return nil
}
