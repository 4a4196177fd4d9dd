package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var nodeNamePartRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// NodeNameFormat validates an Erlang-style node name of the form
// "<name>@<host>". The name part may contain only [A-Za-z0-9_-]; the host part
// must be non-empty and may not contain another '@'.
func NodeNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("node name cannot be empty")
	}

	local, host, ok := strings.Cut(name, "@")
	if !ok {
		return fmt.Errorf("node name '%s' must have the form name@host", name)
	}

	if !nodeNamePartRegex.MatchString(local) {
		return fmt.Errorf("node name '%s' must contain only letters, numbers, hyphens (-) and underscores (_) before '@'", name)
	}

	if host == "" || strings.Contains(host, "@") {
		return fmt.Errorf("node name '%s' must have exactly one non-empty host after '@'", name)
	}

	return nil
}
