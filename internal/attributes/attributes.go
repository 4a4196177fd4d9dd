// Package attributes builds the default attribute record for a Scalaris
// deployment target.
//
// The record carries the peer-to-peer and web ports, the Erlang node name,
// bootstrap flags, the management server location, the seed peer list, the
// number of nodes per host, the JSON request size ceiling and the user access
// list. It is produced once per evaluation from the host's network address and
// never mutated afterwards; overrides yield a new record (see Apply).
//
// The only computed value is the node name, "node@" followed by the address.
// Everything else is a literal default.
package attributes

const (
	// DefaultPort is the peer-to-peer listen port
	DefaultPort = 14195

	// DefaultPortWeb is the management/web interface port
	DefaultPortWeb = 8000

	// DefaultNodesPerVM is the number of logical nodes started per host
	DefaultNodesPerVM = 1

	// DefaultMaxJSONReqSize is the request body ceiling in bytes (1 MiB)
	DefaultMaxJSONReqSize = 1024 * 1024

	// NodeNamePrefix is prepended to the host address to form the node name
	NodeNamePrefix = "node@"
)

// HostPort is an address and port pair. The address is serialized under the
// "ip4" key, which is what the consuming engine reads even for IPv6 literals.
type HostPort struct {
	IP4  string `json:"ip4" yaml:"ip4" validate:"required,ip"`
	Port int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
}

// User is one entry of the access-control allow-list.
type User struct {
	User     string `json:"user" yaml:"user" validate:"required"`
	Password string `json:"password" yaml:"password" validate:"required"`
}

// NodeDefaultConfig is the attribute record for one Scalaris deployment target.
// Field order matches the serialized key order.
type NodeDefaultConfig struct {
	Port            int        `json:"scalaris_port" yaml:"scalaris_port" validate:"min=1,max=65535"`
	PortWeb         int        `json:"scalaris_port_web" yaml:"scalaris_port_web" validate:"min=1,max=65535"`
	Node            string     `json:"scalaris_node" yaml:"scalaris_node" validate:"required"`
	StartFirst      bool       `json:"scalaris_start_first" yaml:"scalaris_start_first"`
	StartMgmtServer bool       `json:"scalaris_start_mgmt_server" yaml:"scalaris_start_mgmt_server"`
	MgmtServer      HostPort   `json:"scalaris_mgmt_server" yaml:"scalaris_mgmt_server"`
	KnownHosts      []HostPort `json:"scalaris_known_hosts" yaml:"scalaris_known_hosts" validate:"min=1,dive"`
	NodesPerVM      int        `json:"scalaris_nodes_per_vm" yaml:"scalaris_nodes_per_vm" validate:"min=1"`
	MaxJSONReqSize  int        `json:"scalaris_max_json_req_size" yaml:"scalaris_max_json_req_size" validate:"min=1"`
	Users           []User     `json:"scalaris_users" yaml:"scalaris_users" validate:"unique=User,dive"`
}

// NodeName returns the Erlang node name for a host address.
func NodeName(addr string) string {
	return NodeNamePrefix + addr
}

// Defaults builds the default record for a host with network address addr.
// The host bootstraps the cluster, runs the management server itself and
// lists itself as the only seed peer; deployments replace the known hosts with
// the address of an existing node.
func Defaults(addr string) NodeDefaultConfig {
	return NodeDefaultConfig{
		Port:            DefaultPort,
		PortWeb:         DefaultPortWeb,
		Node:            NodeName(addr),
		StartFirst:      true,
		StartMgmtServer: true,
		MgmtServer:      HostPort{IP4: addr, Port: DefaultPort},
		KnownHosts:      []HostPort{{IP4: addr, Port: DefaultPort}},
		NodesPerVM:      DefaultNodesPerVM,
		MaxJSONReqSize:  DefaultMaxJSONReqSize,
		Users:           []User{},
	}
}

// Clone returns a deep copy. A nil user list becomes an empty one so the copy
// always serializes scalaris_users as [] rather than null.
func (c NodeDefaultConfig) Clone() NodeDefaultConfig {
	out := c
	out.KnownHosts = append([]HostPort{}, c.KnownHosts...)
	out.Users = append([]User{}, c.Users...)
	return out
}

// Unrestricted reports whether the user list is empty, meaning access is not
// restricted.
func (c NodeDefaultConfig) Unrestricted() bool {
	return len(c.Users) == 0
}

// Credentials returns the user list as a name to password map.
func (c NodeDefaultConfig) Credentials() map[string]string {
	creds := make(map[string]string, len(c.Users))
	for _, u := range c.Users {
		creds[u.User] = u.Password
	}
	return creds
}
