package cloudfront

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/smithy-go"

	"github.com/imamik/cfdistro/internal/distribution"
)

// DefaultRegion is used when no region is configured. CloudFront is a
// global service signed in us-east-1.
const DefaultRegion = "us-east-1"

// Options configures NewClient.
type Options struct {
	// Region for request signing. Defaults to DefaultRegion.
	Region string
	// Profile selects a shared config profile.
	Profile string
	// Endpoint overrides the service endpoint, e.g. for a local emulator.
	Endpoint string
}

// Client wraps the CloudFront API client.
type Client struct {
	cf *cloudfront.Client
}

// LoadAWSConfig resolves credentials and region through the default AWS chain.
func LoadAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = DefaultRegion
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// NewClient creates a CloudFront client from the default AWS config chain.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	cfg, err := LoadAWSConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts.Endpoint), nil
}

// NewFromConfig creates a client from an existing AWS config.
// SDK retries are disabled; a failed call is reported as is.
func NewFromConfig(cfg aws.Config, endpoint string) *Client {
	client := cloudfront.NewFromConfig(cfg, func(o *cloudfront.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.Retryer = aws.NopRetryer{}
	})
	return &Client{cf: client}
}

// ListDistributions returns the summaries of the first result page.
func (c *Client) ListDistributions(ctx context.Context) ([]distribution.Summary, error) {
	out, err := c.cf.ListDistributions(ctx, &cloudfront.ListDistributionsInput{})
	if err != nil {
		return nil, classify(err)
	}
	if out.DistributionList == nil {
		return nil, nil
	}

	summaries := make([]distribution.Summary, 0, len(out.DistributionList.Items))
	for _, s := range out.DistributionList.Items {
		summary := distribution.Summary{
			ID:         aws.ToString(s.Id),
			ARN:        aws.ToString(s.ARN),
			DomainName: aws.ToString(s.DomainName),
			Comment:    aws.ToString(s.Comment),
			Status:     aws.ToString(s.Status),
			Enabled:    aws.ToBool(s.Enabled),
		}
		if s.Aliases != nil {
			summary.Aliases = append([]string{}, s.Aliases.Items...)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetDistributionConfig returns the config of distribution id and its ETag.
func (c *Client) GetDistributionConfig(ctx context.Context, id string) (*distribution.Config, string, error) {
	out, err := c.cf.GetDistributionConfig(ctx, &cloudfront.GetDistributionConfigInput{
		Id: aws.String(id),
	})
	if err != nil {
		return nil, "", classify(err)
	}
	return fromSDK(out.DistributionConfig), aws.ToString(out.ETag), nil
}

// CreateDistribution creates a distribution and returns its summary.
func (c *Client) CreateDistribution(ctx context.Context, cfg *distribution.Config) (*distribution.Summary, error) {
	out, err := c.cf.CreateDistribution(ctx, &cloudfront.CreateDistributionInput{
		DistributionConfig: toSDK(cfg),
	})
	if err != nil {
		return nil, classify(err)
	}
	if out.Distribution == nil {
		return &distribution.Summary{}, nil
	}

	d := out.Distribution
	summary := &distribution.Summary{
		ID:         aws.ToString(d.Id),
		ARN:        aws.ToString(d.ARN),
		DomainName: aws.ToString(d.DomainName),
		Status:     aws.ToString(d.Status),
	}
	if dc := d.DistributionConfig; dc != nil {
		summary.Comment = aws.ToString(dc.Comment)
		summary.Enabled = aws.ToBool(dc.Enabled)
		if dc.Aliases != nil {
			summary.Aliases = append([]string{}, dc.Aliases.Items...)
		}
	}
	return summary, nil
}

// UpdateDistribution replaces the config of distribution id, guarded by etag.
func (c *Client) UpdateDistribution(ctx context.Context, id string, cfg *distribution.Config, etag string) error {
	_, err := c.cf.UpdateDistribution(ctx, &cloudfront.UpdateDistributionInput{
		Id:                 aws.String(id),
		IfMatch:            aws.String(etag),
		DistributionConfig: toSDK(cfg),
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

// classify maps API errors onto the distribution sentinels.
func classify(err error) error {
	switch {
	case isConflictError(err):
		return fmt.Errorf("%w: %w", distribution.ErrConflict, err)
	case isNotFoundError(err):
		return fmt.Errorf("%w: %w", distribution.ErrNotFound, err)
	default:
		return fmt.Errorf("cloudfront: %w", err)
	}
}

// isConflictError reports a stale or missing If-Match ETag.
func isConflictError(err error) bool {
	if err == nil {
		return false
	}

	var pf *types.PreconditionFailed
	if errors.As(err, &pf) {
		return true
	}

	var iim *types.InvalidIfMatchVersion
	if errors.As(err, &iim) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "PreconditionFailed" || code == "InvalidIfMatchVersion"
	}

	return false
}

// isNotFoundError reports an unknown distribution id.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var nsd *types.NoSuchDistribution
	if errors.As(err, &nsd) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchDistribution"
	}

	return false
}
