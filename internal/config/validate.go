package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalid is returned (wrapped) by Validate when a Desired config is unusable.
var ErrInvalid = errors.New("invalid distribution configuration")

// maxNameLength is the CloudFront limit for the distribution comment and caller reference.
const maxNameLength = 128

// Validate checks the configuration and returns every problem found, wrapped in ErrInvalid.
func (d *Desired) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: configuration is empty", ErrInvalid)
	}

	var errs []error

	// Name: required, used as comment and caller reference
	if d.Name == "" {
		errs = append(errs, errors.New("name is required"))
	} else if len(d.Name) > maxNameLength {
		errs = append(errs, fmt.Errorf("name must be at most %d characters", maxNameLength))
	}

	// Buckets: at least one, none empty
	if len(d.S3Buckets) == 0 {
		errs = append(errs, errors.New("s3_buckets must contain at least one bucket"))
	}
	for i, b := range d.S3Buckets {
		if strings.TrimSpace(b) == "" {
			errs = append(errs, fmt.Errorf("s3_buckets[%d] is empty", i))
		}
	}

	for i, domain := range d.Domains {
		if strings.TrimSpace(domain) == "" {
			errs = append(errs, fmt.Errorf("domains[%d] is empty", i))
		}
	}
	for i, signer := range d.CacheTrustedSigners {
		if strings.TrimSpace(signer) == "" {
			errs = append(errs, fmt.Errorf("cache_trusted_signers[%d] is empty", i))
		}
	}

	if d.CacheForwardCookiesMode != nil && !d.CacheForwardCookiesMode.IsValid() {
		errs = append(errs, fmt.Errorf("cache_forward_cookies_mode must be one of: %v", ValidCookieModes()))
	}
	if d.HTTPSBehavior != nil && !d.HTTPSBehavior.IsValid() {
		errs = append(errs, fmt.Errorf("https_behavior must be one of: %v", ValidViewerPolicies()))
	}
	if d.PriceClass != nil && !d.PriceClass.IsValid() {
		errs = append(errs, fmt.Errorf("price_class must be one of: %v", ValidPriceClasses()))
	}
	if d.HTTPVersion != nil && !slices.Contains(validHTTPVersions, strings.ToLower(*d.HTTPVersion)) {
		errs = append(errs, fmt.Errorf("http_version must be one of: %v", validHTTPVersions))
	}

	errs = append(errs, d.validateCertificate()...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// validateCertificate requires exactly the certificate field matching certificate_source.
func (d *Desired) validateCertificate() []error {
	source := CertificateDefault
	if d.CertificateSource != nil {
		source = *d.CertificateSource
	}
	hasARN := d.CertificateARN != nil && *d.CertificateARN != ""
	hasIAM := d.CertificateIAM != nil && *d.CertificateIAM != ""

	var errs []error
	switch source {
	case CertificateACM:
		if !hasARN {
			errs = append(errs, errors.New("certificate_arn is required when certificate_source is acm"))
		}
		if d.CertificateIAM != nil {
			errs = append(errs, errors.New("certificate_iam must not be set when certificate_source is acm"))
		}
	case CertificateIAM:
		if !hasIAM {
			errs = append(errs, errors.New("certificate_iam is required when certificate_source is iam"))
		}
		if d.CertificateARN != nil {
			errs = append(errs, errors.New("certificate_arn must not be set when certificate_source is iam"))
		}
	case CertificateDefault:
		if d.CertificateARN != nil || d.CertificateIAM != nil {
			errs = append(errs, errors.New("certificate_arn and certificate_iam require certificate_source acm or iam"))
		}
	default:
		errs = append(errs, fmt.Errorf("certificate_source %q must be one of: \"\", acm, iam", source))
	}
	return errs
}
