// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/distribution"
	"github.com/imamik/cfdistro/internal/platform/cloudfront"
	"github.com/imamik/cfdistro/internal/platform/s3"
	"github.com/imamik/cfdistro/internal/reconcile"
)

// Options holds the global and per-command flags shared by the handlers.
type Options struct {
	ConfigPath  string
	OriginType  string
	Region      string
	Profile     string
	Endpoint    string
	Timeout     time.Duration
	LogLevel    string
	MetricsFile string
}

// BucketChecker verifies origin buckets before a write.
type BucketChecker interface {
	Preflight(ctx context.Context, buckets []string, requireWebsite bool) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newClient creates the CloudFront client.
	newClient = func(ctx context.Context, opts cloudfront.Options) (reconcile.Client, error) {
		client, err := cloudfront.NewClient(ctx, opts)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	// newBucketChecker creates the S3 client used by --check-buckets.
	newBucketChecker = func(ctx context.Context, opts cloudfront.Options) (BucketChecker, error) {
		cfg, err := cloudfront.LoadAWSConfig(ctx, opts)
		if err != nil {
			return nil, err
		}
		return s3.NewFromConfig(cfg, opts.Endpoint), nil
	}

	// newLogger creates the logger for a run.
	newLogger = newZapLogger

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// getenv reads environment variables (for testing injection).
	getenv = os.Getenv

	// stdout receives command output.
	stdout io.Writer = os.Stdout
)

// loadConfig loads and validates the configuration.
// If configPath is empty, it looks for cfdistro.yaml in the current directory and its parents.
func loadConfig(configPath string) (*config.Desired, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'cfdistro init' to create one", err)
		}
		configPath = path
	}

	d, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return d, nil
}

// resolveRegion picks the region from the flag, then AWS_REGION, then the CloudFront default.
func resolveRegion(flag string) string {
	if flag != "" {
		return flag
	}
	if env := getenv("AWS_REGION"); env != "" {
		return env
	}
	return cloudfront.DefaultRegion
}

func (o *Options) awsOptions() cloudfront.Options {
	return cloudfront.Options{
		Region:   resolveRegion(o.Region),
		Profile:  o.Profile,
		Endpoint: o.Endpoint,
	}
}

func (o *Options) translator() (distribution.Translator, error) {
	mapper, err := distribution.OriginMapperFor(o.OriginType, resolveRegion(o.Region))
	if err != nil {
		return distribution.Translator{}, err
	}
	return distribution.NewTranslator(mapper), nil
}

// withTimeout bounds ctx by d when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// newReconciler wires the provider client, translator and logger for apply and plan.
func newReconciler(ctx context.Context, opts *Options, logger logr.Logger, metrics *reconcile.Metrics) (*reconcile.Reconciler, error) {
	translator, err := opts.translator()
	if err != nil {
		return nil, err
	}

	client, err := newClient(ctx, opts.awsOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create CloudFront client: %w", err)
	}

	reconcilerOpts := []reconcile.Option{reconcile.WithLogger(logger)}
	if metrics != nil {
		reconcilerOpts = append(reconcilerOpts, reconcile.WithMetrics(metrics))
	}
	return reconcile.New(client, translator, reconcilerOpts...), nil
}
