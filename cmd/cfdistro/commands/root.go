// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/cfdistro/cmd/cfdistro/handlers"
	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/distribution"
)

// Root returns the root command for the cfdistro CLI.
//
// The global flags are bound to one handlers.Options value shared by all
// subcommands.
func Root() *cobra.Command {
	opts := &handlers.Options{}

	cmd := &cobra.Command{
		Use:          "cfdistro",
		Short:        "Reconcile CloudFront distributions in front of S3 buckets",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.OriginType, "origin-type", distribution.OriginKindWebsite, "Origin mapping: website or s3")
	flags.StringVar(&opts.Region, "region", "", "AWS region of the origin buckets (default: $AWS_REGION or us-east-1)")
	flags.StringVar(&opts.Profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&opts.Endpoint, "endpoint-url", "", "Override the AWS API endpoint")
	flags.DurationVar(&opts.Timeout, "timeout", config.LoadTimeouts().Reconcile, "Timeout for all provider calls of one run")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after apply")

	cmd.AddCommand(Init())
	cmd.AddCommand(Plan(opts))
	cmd.AddCommand(Apply(opts))
	cmd.AddCommand(Render(opts))
	cmd.AddCommand(Version())

	return cmd
}
