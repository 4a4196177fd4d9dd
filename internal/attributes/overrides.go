package attributes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Overrides is a partial record layered over the defaults. A nil pointer or
// nil slice leaves the field untouched; a non-nil empty slice clears it.
type Overrides struct {
	Port            *int       `json:"scalaris_port,omitempty" yaml:"scalaris_port,omitempty"`
	PortWeb         *int       `json:"scalaris_port_web,omitempty" yaml:"scalaris_port_web,omitempty"`
	Node            *string    `json:"scalaris_node,omitempty" yaml:"scalaris_node,omitempty"`
	StartFirst      *bool      `json:"scalaris_start_first,omitempty" yaml:"scalaris_start_first,omitempty"`
	StartMgmtServer *bool      `json:"scalaris_start_mgmt_server,omitempty" yaml:"scalaris_start_mgmt_server,omitempty"`
	MgmtServer      *HostPort  `json:"scalaris_mgmt_server,omitempty" yaml:"scalaris_mgmt_server,omitempty"`
	KnownHosts      []HostPort `json:"scalaris_known_hosts,omitempty" yaml:"scalaris_known_hosts,omitempty"`
	NodesPerVM      *int       `json:"scalaris_nodes_per_vm,omitempty" yaml:"scalaris_nodes_per_vm,omitempty"`
	MaxJSONReqSize  *int       `json:"scalaris_max_json_req_size,omitempty" yaml:"scalaris_max_json_req_size,omitempty"`
	Users           []User     `json:"scalaris_users,omitempty" yaml:"scalaris_users,omitempty"`
}

// IsZero reports whether no field is overridden.
func (o Overrides) IsZero() bool {
	return o.Port == nil && o.PortWeb == nil && o.Node == nil &&
		o.StartFirst == nil && o.StartMgmtServer == nil && o.MgmtServer == nil &&
		o.KnownHosts == nil && o.NodesPerVM == nil && o.MaxJSONReqSize == nil &&
		o.Users == nil
}

// Merge returns o with every field set in other taking precedence.
func (o Overrides) Merge(other Overrides) Overrides {
	out := o
	if other.Port != nil {
		out.Port = other.Port
	}
	if other.PortWeb != nil {
		out.PortWeb = other.PortWeb
	}
	if other.Node != nil {
		out.Node = other.Node
	}
	if other.StartFirst != nil {
		out.StartFirst = other.StartFirst
	}
	if other.StartMgmtServer != nil {
		out.StartMgmtServer = other.StartMgmtServer
	}
	if other.MgmtServer != nil {
		out.MgmtServer = other.MgmtServer
	}
	if other.KnownHosts != nil {
		out.KnownHosts = other.KnownHosts
	}
	if other.NodesPerVM != nil {
		out.NodesPerVM = other.NodesPerVM
	}
	if other.MaxJSONReqSize != nil {
		out.MaxJSONReqSize = other.MaxJSONReqSize
	}
	if other.Users != nil {
		out.Users = other.Users
	}
	return out
}

// Apply returns a copy of c with the overrides applied. The receiver and the
// overrides are left untouched; no slice is shared with either.
func (c NodeDefaultConfig) Apply(o Overrides) NodeDefaultConfig {
	out := c.Clone()
	if o.Port != nil {
		out.Port = *o.Port
	}
	if o.PortWeb != nil {
		out.PortWeb = *o.PortWeb
	}
	if o.Node != nil {
		out.Node = *o.Node
	}
	if o.StartFirst != nil {
		out.StartFirst = *o.StartFirst
	}
	if o.StartMgmtServer != nil {
		out.StartMgmtServer = *o.StartMgmtServer
	}
	if o.MgmtServer != nil {
		out.MgmtServer = *o.MgmtServer
	}
	if o.KnownHosts != nil {
		out.KnownHosts = append([]HostPort{}, o.KnownHosts...)
	}
	if o.NodesPerVM != nil {
		out.NodesPerVM = *o.NodesPerVM
	}
	if o.MaxJSONReqSize != nil {
		out.MaxJSONReqSize = *o.MaxJSONReqSize
	}
	if o.Users != nil {
		out.Users = append([]User{}, o.Users...)
	}
	return out
}

// DecodeOverrides parses a YAML or JSON overrides document. Unknown keys are
// rejected so a misspelled attribute does not silently fall back to its
// default. An empty document yields zero overrides.
func DecodeOverrides(data []byte) (Overrides, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Overrides{}, nil
	}

	var o Overrides
	if err := decodeStrict(data, DetectFormat(data), &o); err != nil {
		if errors.Is(err, io.EOF) {
			return Overrides{}, nil
		}
		return Overrides{}, fmt.Errorf("failed to decode overrides: %w", err)
	}
	return o, nil
}

// LoadOverrides reads and decodes an overrides file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}
	o, err := DecodeOverrides(data)
	if err != nil {
		return Overrides{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}
