package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/distribution"
	"github.com/imamik/cfdistro/internal/reconcile"
)

// Apply creates or updates the distribution described by the config file.
//
// The run:
//  1. Loads and validates the configuration
//  2. Optionally checks that the origin buckets exist (and host a website)
//  3. Reconciles the distribution: create, update or nothing
//  4. Writes the metrics file if one is configured, also after a failure
func Apply(ctx context.Context, opts *Options, checkBuckets bool) error {
	logger, flush, err := newLogger(opts.LogLevel)
	if err != nil {
		return err
	}
	defer flush()

	desired, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	if checkBuckets {
		if err := preflight(ctx, opts, desired); err != nil {
			return err
		}
	}

	metrics := reconcile.NewMetrics()
	r, err := newReconciler(ctx, opts, logger, metrics)
	if err != nil {
		return err
	}

	outcome, err := r.Reconcile(ctx, desired)
	if opts.MetricsFile != "" {
		if werr := metrics.WriteTextfile(opts.MetricsFile); werr != nil {
			logger.Error(werr, "failed to write metrics file", "path", opts.MetricsFile)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to apply distribution %q: %w", desired.Name, err)
	}

	printApplyResult(desired.Name, outcome)
	return nil
}

// preflight checks the origin buckets. Website origins also need website hosting.
func preflight(ctx context.Context, opts *Options, desired *config.Desired) error {
	checker, err := newBucketChecker(ctx, opts.awsOptions())
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	ctx, cancel := withTimeout(ctx, config.LoadTimeouts().Preflight)
	defer cancel()

	requireWebsite := opts.OriginType == "" || opts.OriginType == distribution.OriginKindWebsite
	if err := checker.Preflight(ctx, desired.S3Buckets, requireWebsite); err != nil {
		return fmt.Errorf("origin bucket check failed: %w", err)
	}
	return nil
}

func printApplyResult(name string, outcome reconcile.Outcome) {
	switch outcome {
	case reconcile.Created:
		fmt.Fprintf(stdout, "Created distribution %q\n", name)
	case reconcile.Updated:
		fmt.Fprintf(stdout, "Updated distribution %q\n", name)
	default:
		fmt.Fprintf(stdout, "Distribution %q is up to date\n", name)
	}
}
