package validate

import "testing"

func TestNodeNameFormat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"ipv4 host", "node@10.0.0.1", false},
		{"ipv6 host", "node@::1", false},
		{"hostname host", "first_node@scalaris-1", false},
		{"empty", "", true},
		{"missing at", "node", true},
		{"missing host", "node@", true},
		{"missing name", "@10.0.0.1", true},
		{"double at", "node@a@b", true},
		{"invalid character", "no de@10.0.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NodeNameFormat(tt.input)
			if (err != nil) != tt.expectError {
				t.Errorf("NodeNameFormat(%q) error = %v, expectError %v", tt.input, err, tt.expectError)
			}
		})
	}
}
