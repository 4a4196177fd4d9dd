// Package netutil provides listener and network error helpers for the
// scalaris-pic API server and client.
//
// The server binds its listener before serving so a port conflict surfaces
// from Start as a typed error instead of a log line from a background
// goroutine. The client uses the same errno classification to tell "nothing
// is listening" apart from timeouts and DNS failures, which decides whether
// the user sees a hint about starting `scalaris-pic serve`.
//
// Key capabilities:
//   - Listener binding with AddressInUseError for held ports
//   - Port read-back for OS-assigned (port 0) listeners
//   - Type-based EADDRINUSE and ECONNREFUSED detection via syscall constants
package netutil

import (
	"fmt"
	"net"
	"strconv"
)

// Listen binds a TCP listener on address:port. Port 0 asks the OS for a free
// port; use ListenerPort to read it back. A port held by another process
// yields an *AddressInUseError.
//
// Used by api.Server.Start. Once Listen returns the port is held until the
// listener is closed, so the server never reports success for an address it
// cannot serve on.
func Listen(address string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			return nil, &AddressInUseError{
				Port:    port,
				Address: address,
				Err:     err,
			}
		}
		return nil, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}

	return listener, nil
}

// ListenerPort extracts the port number from a bound TCP listener.
func ListenerPort(listener net.Listener) (int, error) {
	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", listener.Addr())
	}
	return tcpAddr.Port, nil
}
