package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cfdistro/cmd/cfdistro/handlers"
)

// Apply returns the command that creates or updates the distribution.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect cfdistro.yaml)
//	--check-buckets: Verify the origin buckets before writing
func Apply(opts *handlers.Options) *cobra.Command {
	var checkBuckets bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update the distribution",
		Long: `Create or update the CloudFront distribution described by the config file.

The distribution is looked up by its comment, which is the configured name.
If none exists it is created; if the live configuration differs it is
replaced with the desired one; otherwise nothing is written.

If no config file is specified, cfdistro.yaml is searched in the current
directory and its parents. Use 'cfdistro init' to create one.

Examples:
  # Apply cfdistro.yaml
  cfdistro apply

  # Apply a specific file and verify the buckets first
  cfdistro apply -c site.yaml --check-buckets

  # Use S3 REST origins instead of website endpoints
  cfdistro apply --origin-type s3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts, checkBuckets)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&checkBuckets, "check-buckets", false, "Verify that origin buckets exist before writing")

	return cmd
}
