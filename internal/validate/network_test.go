package validate

import (
	"testing"
)

// Test cases for ParseBindAddress function
func TestParseBindAddress(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedIP   string
		expectedPort int
	}{
		{
			name:         "valid IPv4 address",
			input:        "192.168.1.1:14195",
			expectedIP:   "192.168.1.1",
			expectedPort: 14195,
		},
		{
			name:         "valid IPv6 address",
			input:        "[::1]:8000",
			expectedIP:   "::1",
			expectedPort: 8000,
		},
		{
			name:         "valid high port number",
			input:        "10.0.0.1:65535",
			expectedIP:   "10.0.0.1",
			expectedPort: 65535,
		},
		{
			name:        "empty address",
			input:       "",
			expectError: true,
		},
		{
			name:        "missing port",
			input:       "192.168.1.1",
			expectError: true,
		},
		{
			name:        "hostname instead of IP",
			input:       "localhost:8000",
			expectError: true,
		},
		{
			name:        "port zero",
			input:       "10.0.0.1:0",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "10.0.0.1:65536",
			expectError: true,
		},
		{
			name:        "non-numeric port",
			input:       "10.0.0.1:http",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseBindAddress(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseBindAddress(%q) expected error, got %+v", tt.input, addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBindAddress(%q) unexpected error: %v", tt.input, err)
			}
			if addr.Host != tt.expectedIP {
				t.Errorf("Host = %q, want %q", addr.Host, tt.expectedIP)
			}
			if addr.Port != tt.expectedPort {
				t.Errorf("Port = %d, want %d", addr.Port, tt.expectedPort)
			}
		})
	}
}

// TestNetworkAddressString tests host:port formatting including IPv6 brackets
func TestNetworkAddressString(t *testing.T) {
	if got := (NetworkAddress{Host: "10.0.0.1", Port: 14195}).String(); got != "10.0.0.1:14195" {
		t.Errorf("String() = %q", got)
	}
	if got := (NetworkAddress{Host: "::1", Port: 8000}).String(); got != "[::1]:8000" {
		t.Errorf("String() = %q", got)
	}
}

// TestValidateIP tests IP literal validation
func TestValidateIP(t *testing.T) {
	valid := []string{"127.0.0.1", "10.1.2.3", "::1", "fe80::1"}
	for _, ip := range valid {
		if err := ValidateIP(ip); err != nil {
			t.Errorf("ValidateIP(%q) unexpected error: %v", ip, err)
		}
	}

	invalid := []string{"", "host.example", "10.0.0", "10.0.0.1:80"}
	for _, ip := range invalid {
		if err := ValidateIP(ip); err == nil {
			t.Errorf("ValidateIP(%q) expected error", ip)
		}
	}
}

// TestValidateAddressList tests seed address list validation
func TestValidateAddressList(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		expectError bool
	}{
		{"single address", []string{"10.0.0.1:14195"}, false},
		{"multiple addresses", []string{"10.0.0.1:14195", "10.0.0.2:14195"}, false},
		{"empty list", nil, true},
		{"one invalid entry", []string{"10.0.0.1:14195", "bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddressList(tt.input)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateAddressList(%v) error = %v, expectError %v", tt.input, err, tt.expectError)
			}
		})
	}
}

// TestValidatePortRange tests port range boundaries
func TestValidatePortRange(t *testing.T) {
	tests := []struct {
		port        int
		expectError bool
	}{
		{0, true},
		{1, false},
		{8000, false},
		{14195, false},
		{65535, false},
		{65536, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidatePortRange(tt.port)
		if (err != nil) != tt.expectError {
			t.Errorf("ValidatePortRange(%d) error = %v, expectError %v", tt.port, err, tt.expectError)
		}
	}
}

// TestValidatePositive tests positive integer validation
func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive(1, "nodes per vm"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePositive(0, "nodes per vm"); err == nil {
		t.Error("expected error for zero")
	}
}

// TestValidateRequiredString tests required string validation
func TestValidateRequiredString(t *testing.T) {
	if err := ValidateRequiredString("admin", "user"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateRequiredString("", "user")
	if err == nil || err.Error() != "user cannot be empty" {
		t.Errorf("expected 'user cannot be empty', got %v", err)
	}
}
