// Package config defines the user-facing configuration model for a
// CloudFront distribution serving S3 buckets.
//
// [Desired] is what a user or a configuration-management module supplies:
// only the name and the bucket list are required, every other field is
// optional and explicitly unset when nil. [Normalize] overlays a Desired
// config on the immutable [Default] table and yields a [Normalized] config,
// the unit the reconciler compares against the live distribution.
//
// Desired configs are read from YAML files ([Load]) or from plain keyed
// records such as module parameters ([Decode]). Both paths share the same
// mapstructure decoding and [Desired.Validate] rules.
package config
