package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cfdistro/cmd/cfdistro/handlers"
)

// Render returns the command that prints the provider config offline.
//
// Flags:
//
//	--config, -c: Path to configuration YAML file
//	--output, -o: Output format, json or yaml (default "json")
func Render(opts *handlers.Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the CloudFront config for the config file",
		Long: `Print the DistributionConfig that apply would send, without calling AWS.

The caller reference is left out; apply sets it when creating or updating.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Render(opts, format)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&format, "output", "o", handlers.FormatJSON, "Output format: json or yaml")

	return cmd
}
