package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrBucketNotFound is returned when an origin bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrWebsiteDisabled is returned when a website origin bucket has no website configuration.
	ErrWebsiteDisabled = errors.New("bucket has no static website configuration")
)

// Client wraps the S3 client for origin bucket checks.
type Client struct {
	s3 *s3.Client
}

// NewFromConfig creates a Client from an AWS config. A non-empty endpoint
// switches to path-style addressing for S3-compatible emulators.
func NewFromConfig(cfg aws.Config, endpoint string) *Client {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &Client{s3: client}
}

// BucketExists checks if a bucket exists and is accessible.
func (c *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	return true, nil
}

// WebsiteEnabled checks if a bucket has a static website configuration.
func (c *Client) WebsiteEnabled(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.s3.GetBucketWebsite(ctx, &s3.GetBucketWebsiteInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		if isNoWebsiteError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get website configuration of bucket %s: %w", bucketName, err)
	}
	return true, nil
}

// Preflight checks every bucket and returns all problems joined.
// With requireWebsite set, existing buckets must also serve a website.
func (c *Client) Preflight(ctx context.Context, buckets []string, requireWebsite bool) error {
	var errs []error
	for _, bucket := range buckets {
		exists, err := c.BucketExists(ctx, bucket)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !exists {
			errs = append(errs, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket))
			continue
		}
		if !requireWebsite {
			continue
		}
		enabled, err := c.WebsiteEnabled(ctx, bucket)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !enabled {
			errs = append(errs, fmt.Errorf("%w: %s", ErrWebsiteDisabled, bucket))
		}
	}
	return errors.Join(errs...)
}

// isNotFoundError checks if the error is a not found error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	// Check for typed S3 errors first
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	// Fall back to API error code checking for S3-compatible services
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket" || code == "404"
	}

	return false
}

// isNoWebsiteError checks if the error reports a missing website configuration.
// The SDK has no typed error for it.
func isNoWebsiteError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchWebsiteConfiguration"
	}

	return false
}
