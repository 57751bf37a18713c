package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cfdistro/cmd/cfdistro/handlers"
)

// Plan returns the command that shows what apply would change.
func Plan(opts *handlers.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would change",
		Long: `Compare the live distribution with the config file without writing.

The output names the action apply would take and the fields that differ.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")

	return cmd
}
