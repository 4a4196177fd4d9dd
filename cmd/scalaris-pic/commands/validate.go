package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/config"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/spf13/cobra"
)

// ErrInvalidDocument is returned when a document fails validation
var ErrInvalidDocument = errors.New("attribute document is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate an attribute tree or record",
	Long: `Validate a JSON or YAML file holding either a full REC tree or a bare
attribute record. Exits non-zero when the document is invalid.

With --remote the document is posted to a running server, which also enforces
its request size limit.`,
	Example: `  scalaris-pic validate attributes.json
  scalaris-pic validate --remote --api=10.0.0.5:8008 attributes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: handleValidate,
}

func handleValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if config.Global.Remote {
		return validateRemote(cmd, path, data)
	}

	cfg, err := attributes.DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%s)\n", path, cfg.Node)
	return nil
}

func validateRemote(cmd *cobra.Command, path string, data []byte) error {
	result, err := newAPIClient().Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid() {
		return fmt.Errorf("%w: %s: %s", ErrInvalidDocument, path, result.Error)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%s)\n", path, result.Node)
	return nil
}
