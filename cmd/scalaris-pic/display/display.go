// Package display formats attribute records for humans. Machine readable
// output (JSON/YAML) goes through attributes.Encode instead.
package display

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#42E7FF"))

// Attributes writes a two-column summary of the record. Passwords are never
// printed; only the user names and the access mode are shown.
func Attributes(w io.Writer, cfg attributes.NodeDefaultConfig) error {
	if _, err := fmt.Fprintln(w, headerStyle.Render("Scalaris attributes for "+cfg.Node)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ATTRIBUTE\tVALUE")
	fmt.Fprintf(tw, "Node\t%s\n", cfg.Node)
	fmt.Fprintf(tw, "Port\t%d\n", cfg.Port)
	fmt.Fprintf(tw, "Web Port\t%d\n", cfg.PortWeb)
	fmt.Fprintf(tw, "Start First\t%t\n", cfg.StartFirst)
	fmt.Fprintf(tw, "Start Mgmt Server\t%t\n", cfg.StartMgmtServer)
	fmt.Fprintf(tw, "Mgmt Server\t%s\n", hostPort(cfg.MgmtServer))
	fmt.Fprintf(tw, "Known Hosts\t%s\n", hostPorts(cfg.KnownHosts))
	fmt.Fprintf(tw, "Nodes Per VM\t%d\n", cfg.NodesPerVM)
	fmt.Fprintf(tw, "Max JSON Request\t%d bytes\n", cfg.MaxJSONReqSize)
	fmt.Fprintf(tw, "Access\t%s\n", access(cfg))
	return tw.Flush()
}

func hostPort(hp attributes.HostPort) string {
	return net.JoinHostPort(hp.IP4, strconv.Itoa(hp.Port))
}

func hostPorts(hps []attributes.HostPort) string {
	if len(hps) == 0 {
		return "-"
	}
	parts := make([]string, len(hps))
	for i, hp := range hps {
		parts[i] = hostPort(hp)
	}
	return strings.Join(parts, ", ")
}

func access(cfg attributes.NodeDefaultConfig) string {
	if cfg.Unrestricted() {
		return "unrestricted"
	}
	names := make([]string, len(cfg.Users))
	for i, u := range cfg.Users {
		names[i] = u.User
	}
	return fmt.Sprintf("restricted (%s)", strings.Join(names, ", "))
}
