// Package s3 checks the buckets behind distribution origins before a write.
//
// A bucket must exist and be reachable with the caller's credentials. When
// the distribution serves the S3 static website endpoint, the bucket must
// also have website hosting configured, otherwise CloudFront answers every
// request with an error from the origin.
package s3
