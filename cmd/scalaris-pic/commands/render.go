package commands

import (
	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/config"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the default attribute tree for this host",
	Long: `Print the attribute tree REC -> PICs -> scalaris_PIC -> attributes for this
host. Evaluating twice with the same host address prints identical output.`,
	Args: cobra.NoArgs,
	RunE: handleRender,
}

func handleRender(cmd *cobra.Command, args []string) error {
	format, err := attributes.ParseFormat(config.Global.Format)
	if err != nil {
		return err
	}

	cfg, err := config.Global.BuildAttributes()
	if err != nil {
		return err
	}

	return writeRecord(cmd, cfg, format)
}

// writeRecord prints the tree, or the bare record with --attributes-only
func writeRecord(cmd *cobra.Command, cfg attributes.NodeDefaultConfig, format attributes.Format) error {
	var doc any = attributes.NewTree(cfg)
	if config.Global.AttributesOnly {
		doc = cfg
	}
	return attributes.Encode(cmd.OutOrStdout(), doc, format)
}
