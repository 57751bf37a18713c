package reconcile

import (
	"context"

	"github.com/imamik/cfdistro/internal/distribution"
)

// Client is the provider API the reconciler talks to.
// platform/cloudfront.Client is the production implementation.
type Client interface {
	// ListDistributions returns the first page of distribution summaries.
	ListDistributions(ctx context.Context) ([]distribution.Summary, error)

	// GetDistributionConfig returns the config of a distribution and its ETag.
	GetDistributionConfig(ctx context.Context, id string) (*distribution.Config, string, error)

	// CreateDistribution creates a distribution from cfg.
	CreateDistribution(ctx context.Context, cfg *distribution.Config) (*distribution.Summary, error)

	// UpdateDistribution replaces the config of a distribution.
	// etag must be the value returned by the last GetDistributionConfig.
	UpdateDistribution(ctx context.Context, id string, cfg *distribution.Config, etag string) error
}
