package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cfdistro/cmd/cfdistro/handlers"
	"github.com/imamik/cfdistro/internal/config"
)

// Init returns the command for interactively creating a configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "cfdistro.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a cfdistro configuration file.

The wizard asks for the distribution name, its domains, the origin buckets,
the viewer protocol policy and the price class. Every other setting keeps
its default and is left out of the file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
