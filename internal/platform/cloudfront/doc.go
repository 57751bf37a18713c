// Package cloudfront implements reconcile.Client on the AWS SDK for Go v2.
//
// It converts between the provider model in package distribution and the
// SDK's DistributionConfig, and classifies API errors into the sentinels
// distribution.ErrConflict and distribution.ErrNotFound.
package cloudfront
