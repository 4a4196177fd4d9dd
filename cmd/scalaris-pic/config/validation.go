package config

import (
	"fmt"
	"os"

	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/concave-dev/scalaris-pic/internal/validate"
)

// InitializeConfig applies environment overrides before validation runs.
func InitializeConfig() {
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		Global.SetExplicitlySet(LogLevelField, true)
		logging.Debug("DEBUG environment variable detected, setting log level to DEBUG")
	}
}

// ValidateConfig validates the global flags shared by all commands. Attribute
// flags are validated later by FlagOverrides and the record itself.
func ValidateConfig() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	if _, err := attributes.ParseFormat(Global.Format); err != nil {
		return err
	}

	switch Global.Output {
	case "", "document", "table":
	default:
		return fmt.Errorf("invalid output %q (use document or table)", Global.Output)
	}

	if Global.IPAddress != "" {
		if err := validate.ValidateIP(Global.IPAddress); err != nil {
			return fmt.Errorf("invalid --ipaddress: %w", err)
		}
	}

	if _, err := validate.ParseBindAddress(Global.APIAddr); err != nil {
		return fmt.Errorf("invalid --api address: %w", err)
	}

	if Global.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second, got: %d", Global.Timeout)
	}

	return nil
}
