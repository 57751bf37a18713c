package config

import "slices"

// Desired is the simplified distribution configuration supplied by the caller.
// Nil pointers and nil slices mean "unset" and are filled from [Default] by [Normalize].
type Desired struct {
	// Name identifies the distribution. It is stored as the distribution
	// comment and used as the idempotency token on create.
	Name string `mapstructure:"name" yaml:"name"`

	// Domains are the alternate domain names (CNAMEs) served by the distribution.
	Domains []string `mapstructure:"domains" yaml:"domains,omitempty"`

	// S3Buckets are the origin buckets. The first one is the default cache behavior target.
	S3Buckets []string `mapstructure:"s3_buckets" yaml:"s3_buckets"`

	CacheForwardCookiesMode *CookieMode `mapstructure:"cache_forward_cookies_mode" yaml:"cache_forward_cookies_mode,omitempty"`
	CacheForwardQueryString *bool       `mapstructure:"cache_forward_querystring" yaml:"cache_forward_querystring,omitempty"`

	// CacheTrustedSigners are AWS account IDs allowed to create signed URLs.
	CacheTrustedSigners []string `mapstructure:"cache_trusted_signers" yaml:"cache_trusted_signers,omitempty"`

	CertificateSource *CertificateSource `mapstructure:"certificate_source" yaml:"certificate_source,omitempty"`
	CertificateARN    *string            `mapstructure:"certificate_arn" yaml:"certificate_arn,omitempty"`
	CertificateIAM    *string            `mapstructure:"certificate_iam" yaml:"certificate_iam,omitempty"`

	Enabled       *bool         `mapstructure:"enabled" yaml:"enabled,omitempty"`
	HTTPVersion   *string       `mapstructure:"http_version" yaml:"http_version,omitempty"`
	HTTPSBehavior *ViewerPolicy `mapstructure:"https_behavior" yaml:"https_behavior,omitempty"`
	IPv6          *bool         `mapstructure:"ipv6" yaml:"ipv6,omitempty"`
	PriceClass    *PriceClass   `mapstructure:"price_class" yaml:"price_class,omitempty"`
	RootObject    *string       `mapstructure:"root_object" yaml:"root_object,omitempty"`
}

// Normalized is a [Desired] config with every optional field materialized.
// Two Normalized values describe the same distribution iff they are deeply equal.
type Normalized struct {
	Name                    string
	Domains                 []string
	S3Buckets               []string
	CacheForwardCookiesMode CookieMode
	CacheForwardQueryString bool
	CacheTrustedSigners     []string
	CertificateSource       CertificateSource
	CertificateARN          *string
	CertificateIAM          *string
	Enabled                 bool
	HTTPVersion             string
	HTTPSBehavior           ViewerPolicy
	IPv6                    bool
	PriceClass              PriceClass
	RootObject              string
}

// CookieMode selects which cookies CloudFront forwards to the origin.
type CookieMode string

const (
	CookiesNone      CookieMode = "none"
	CookiesWhitelist CookieMode = "whitelist"
	CookiesAll       CookieMode = "all"
)

// ValidCookieModes returns all valid cookie forwarding modes.
func ValidCookieModes() []CookieMode {
	return []CookieMode{CookiesNone, CookiesWhitelist, CookiesAll}
}

// IsValid returns true if the mode is a known cookie forwarding mode.
func (m CookieMode) IsValid() bool {
	return slices.Contains(ValidCookieModes(), m)
}

// ViewerPolicy is the protocol policy applied to viewer requests.
type ViewerPolicy string

const (
	ViewerAllowAll        ViewerPolicy = "allow-all"
	ViewerRedirectToHTTPS ViewerPolicy = "redirect-to-https"
	ViewerHTTPSOnly       ViewerPolicy = "https-only"
)

// ValidViewerPolicies returns all valid viewer protocol policies.
func ValidViewerPolicies() []ViewerPolicy {
	return []ViewerPolicy{ViewerAllowAll, ViewerRedirectToHTTPS, ViewerHTTPSOnly}
}

// IsValid returns true if the policy is a known viewer protocol policy.
func (p ViewerPolicy) IsValid() bool {
	return slices.Contains(ValidViewerPolicies(), p)
}

// String returns a human-readable description of the policy.
func (p ViewerPolicy) String() string {
	switch p {
	case ViewerAllowAll:
		return "allow-all (HTTP and HTTPS)"
	case ViewerRedirectToHTTPS:
		return "redirect-to-https (HTTP redirected to HTTPS)"
	case ViewerHTTPSOnly:
		return "https-only (HTTP rejected)"
	default:
		return string(p)
	}
}

// CertificateSource selects which viewer certificate is active.
// The empty source means the default *.cloudfront.net certificate.
type CertificateSource string

const (
	CertificateDefault CertificateSource = ""
	CertificateACM     CertificateSource = "acm"
	CertificateIAM     CertificateSource = "iam"
)

// IsValid returns true if the source is a known certificate source.
func (s CertificateSource) IsValid() bool {
	switch s {
	case CertificateDefault, CertificateACM, CertificateIAM:
		return true
	default:
		return false
	}
}

// PriceClass is the CloudFront edge location tier.
type PriceClass string

const (
	PriceClass100 PriceClass = "PriceClass_100"
	PriceClass200 PriceClass = "PriceClass_200"
	PriceClassAll PriceClass = "PriceClass_All"
)

// ValidPriceClasses returns all valid price classes.
func ValidPriceClasses() []PriceClass {
	return []PriceClass{PriceClass100, PriceClass200, PriceClassAll}
}

// IsValid returns true if the price class is known.
func (p PriceClass) IsValid() bool {
	return slices.Contains(ValidPriceClasses(), p)
}

// String returns a human-readable description of the price class.
func (p PriceClass) String() string {
	switch p {
	case PriceClass100:
		return "PriceClass_100 (North America, Europe, Israel)"
	case PriceClass200:
		return "PriceClass_200 (adds Asia, Africa, Middle East)"
	case PriceClassAll:
		return "PriceClass_All (all edge locations)"
	default:
		return string(p)
	}
}

// validHTTPVersions lists the accepted http_version values in lower case.
var validHTTPVersions = []string{"http1.1", "http2", "http3", "http2and3"}
