package netutil

import (
	"errors"
	"net"
	"testing"
)

func TestListenEphemeralPort(t *testing.T) {
	listener, err := Listen("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer listener.Close()

	port, err := ListenerPort(listener)
	if err != nil {
		t.Fatalf("ListenerPort() error = %v", err)
	}
	if port <= 0 || port > 65535 {
		t.Errorf("ListenerPort() = %d, want a valid port", port)
	}
}

func TestListenAddressInUse(t *testing.T) {
	first, err := Listen("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer first.Close()

	port, err := ListenerPort(first)
	if err != nil {
		t.Fatalf("ListenerPort() error = %v", err)
	}

	_, err = Listen("127.0.0.1", port)
	if err == nil {
		t.Fatal("expected error binding a port that is already held")
	}

	var inUse *AddressInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("error = %v, want *AddressInUseError", err)
	}
	if inUse.Port != port {
		t.Errorf("AddressInUseError.Port = %d, want %d", inUse.Port, port)
	}
}

func TestIsConnectionRefusedError(t *testing.T) {
	listener, err := Listen("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	_, err = net.Dial("tcp", addr)
	if err == nil {
		t.Skip("port was reclaimed before dial")
	}
	if !IsConnectionRefusedError(err) {
		t.Errorf("IsConnectionRefusedError(%v) = false, want true", err)
	}
	if IsAddressInUseError(err) {
		t.Errorf("IsAddressInUseError(%v) = true, want false", err)
	}
}

func TestNonNetworkErrors(t *testing.T) {
	err := errors.New("plain")
	if IsAddressInUseError(err) || IsConnectionRefusedError(err) {
		t.Error("plain errors must not classify as network errors")
	}
}
