package netutil

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// AddressInUseError reports a listen address that another process holds. The
// original error is kept for errors.Is/As.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// IsAddressInUseError checks for EADDRINUSE by type rather than message text.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks for ECONNREFUSED by type rather than
// message text.
//
// Used by the API client to map a refused connection to
// client.ErrServerUnreachable. Works through wrapping layers (url.Error from
// net/http, resty's retry wrapper) because it relies on errors.As.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}
