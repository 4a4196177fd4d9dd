package commands

import (
	"time"

	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/config"
	"github.com/concave-dev/scalaris-pic/cmd/scalaris-pic/display"
	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/client"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Read the attribute tree from a running server",
	Example: `  scalaris-pic fetch --api=10.0.0.5:8008
  scalaris-pic fetch --api=10.0.0.5:8008 --attributes-only -f yaml
  scalaris-pic fetch --api=10.0.0.5:8008 --user=admin --password=secret -o table`,
	Args: cobra.NoArgs,
	RunE: handleFetch,
}

func newAPIClient() *client.APIClient {
	return client.NewAPIClient(client.Options{
		APIAddr:  config.Global.APIAddr,
		Timeout:  time.Duration(config.Global.Timeout) * time.Second,
		User:     config.Global.User,
		Password: config.Global.Password,
		Retries:  config.DefaultRetries,
	})
}

func handleFetch(cmd *cobra.Command, args []string) error {
	api := newAPIClient()

	if config.Global.Output == "table" {
		cfg, err := api.GetAttributes()
		if err != nil {
			return err
		}
		return display.Attributes(cmd.OutOrStdout(), *cfg)
	}

	format, err := attributes.ParseFormat(config.Global.Format)
	if err != nil {
		return err
	}

	var doc []byte
	if config.Global.AttributesOnly {
		doc, err = api.GetAttributesDocument(format)
	} else {
		doc, err = api.GetTree(format)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(doc)
	return err
}
