package distribution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/util/ptr"
)

// Fixed parts of every generated distribution.
const (
	defaultTTL = 60
	maxTTL     = 3600
	minTTL     = 0

	minimumProtocolVersion = "TLSv1"
	sslSupportMethod       = "sni-only"
	geoRestrictionNone     = "none"
)

var cacheMethods = []string{"GET", "HEAD"}

// Translator converts between the user-facing and the provider config.
type Translator struct {
	Origins OriginMapper
}

// NewTranslator returns a Translator using the given origin mapping.
func NewTranslator(origins OriginMapper) Translator {
	return Translator{Origins: origins}
}

// Render validates and normalizes d and returns the provider config for it.
func (t Translator) Render(d *config.Desired) (*Config, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return t.ToProvider(d.Normalize()), nil
}

// ToProvider returns the provider config for a normalized config.
// n is expected to be valid; see config.Desired.Validate.
func (t Translator) ToProvider(n config.Normalized) *Config {
	origins := make([]Origin, 0, len(n.S3Buckets))
	for _, bucket := range n.S3Buckets {
		origins = append(origins, t.Origins.BucketToOrigin(bucket))
	}
	var target string
	if len(origins) > 0 {
		target = origins[0].ID
	}

	return &Config{
		Aliases:              NewStringList(n.Domains...),
		CacheBehaviors:       &QuantityOnly{Quantity: 0},
		Comment:              ptr.String(n.Name),
		CustomErrorResponses: &QuantityOnly{Quantity: 0},
		DefaultCacheBehavior: &DefaultCacheBehavior{
			AllowedMethods: &AllowedMethods{
				Quantity:      int32(len(cacheMethods)),
				Items:         append([]string{}, cacheMethods...),
				CachedMethods: NewStringList(cacheMethods...),
			},
			Compress:   false,
			DefaultTTL: defaultTTL,
			ForwardedValues: &ForwardedValues{
				Cookies:              &Cookies{Forward: string(n.CacheForwardCookiesMode)},
				Headers:              &QuantityOnly{Quantity: 0},
				QueryString:          n.CacheForwardQueryString,
				QueryStringCacheKeys: &QuantityOnly{Quantity: 0},
			},
			LambdaFunctionAssociations: &QuantityOnly{Quantity: 0},
			MaxTTL:                     maxTTL,
			MinTTL:                     minTTL,
			SmoothStreaming:            false,
			TargetOriginID:             target,
			TrustedSigners:             NewTrustedSigners(n.CacheTrustedSigners),
			ViewerProtocolPolicy:       string(n.HTTPSBehavior),
		},
		DefaultRootObject: ptr.String(n.RootObject),
		Enabled:           ptr.Bool(n.Enabled),
		HTTPVersion:       ptr.String(n.HTTPVersion),
		IsIPV6Enabled:     ptr.Bool(n.IPv6),
		Logging: &Logging{
			Enabled:        false,
			IncludeCookies: false,
			Bucket:         "",
			Prefix:         "",
		},
		Origins: &Origins{
			Quantity: int32(len(origins)),
			Items:    origins,
		},
		PriceClass: ptr.String(string(n.PriceClass)),
		Restrictions: &Restrictions{
			GeoRestriction: GeoRestriction{RestrictionType: geoRestrictionNone, Quantity: 0},
		},
		ViewerCertificate: viewerCertificate(n),
		WebACLID:          ptr.String(""),
	}
}

// viewerCertificate activates exactly one certificate according to the source.
func viewerCertificate(n config.Normalized) *ViewerCertificate {
	vc := &ViewerCertificate{
		MinimumProtocolVersion: ptr.String(minimumProtocolVersion),
		SSLSupportMethod:       ptr.String(sslSupportMethod),
	}

	switch n.CertificateSource {
	case config.CertificateACM:
		vc.CloudFrontDefaultCertificate = ptr.Bool(false)
		vc.ACMCertificateArn = ptr.Clone(n.CertificateARN)
		vc.Certificate = ptr.Clone(n.CertificateARN)
		vc.CertificateSource = ptr.String(string(config.CertificateACM))
	case config.CertificateIAM:
		vc.CloudFrontDefaultCertificate = ptr.Bool(false)
		vc.IAMCertificateID = ptr.Clone(n.CertificateIAM)
		vc.Certificate = ptr.Clone(n.CertificateIAM)
		vc.CertificateSource = ptr.String(string(config.CertificateIAM))
	default:
		vc.CloudFrontDefaultCertificate = ptr.Bool(true)
		vc.CertificateSource = ptr.String(string(config.CertificateDefault))
	}
	return vc
}

// ToDesired reads a provider config back into the user-facing model.
//
// Fields without a provider-side value keep their defaults. The trusted signer
// list is only read when the forwarded values block is present; without it the
// whole forwarding group stays at its defaults.
func (t Translator) ToDesired(c *Config) (config.Normalized, error) {
	n := config.Default()
	if c == nil {
		return n, errors.New("distribution config is nil")
	}

	n.Name = ptr.Deref(c.Comment, "")
	n.Enabled = ptr.Deref(c.Enabled, n.Enabled)
	n.HTTPVersion = strings.ToLower(ptr.Deref(c.HTTPVersion, n.HTTPVersion))
	n.IPv6 = ptr.Deref(c.IsIPV6Enabled, n.IPv6)
	n.RootObject = ptr.Deref(c.DefaultRootObject, n.RootObject)
	if c.PriceClass != nil {
		n.PriceClass = config.PriceClass(*c.PriceClass)
	}

	if dcb := c.DefaultCacheBehavior; dcb != nil {
		if dcb.ViewerProtocolPolicy != "" {
			n.HTTPSBehavior = config.ViewerPolicy(dcb.ViewerProtocolPolicy)
		}
		if fv := dcb.ForwardedValues; fv != nil {
			if fv.Cookies != nil && fv.Cookies.Forward != "" {
				n.CacheForwardCookiesMode = config.CookieMode(fv.Cookies.Forward)
			}
			n.CacheForwardQueryString = fv.QueryString
			if ts := dcb.TrustedSigners; ts != nil && len(ts.Items) > 0 {
				n.CacheTrustedSigners = config.CanonicalSigners(ts.Items)
			}
		}
	}

	if vc := c.ViewerCertificate; vc != nil {
		n.CertificateARN = ptr.Clone(vc.ACMCertificateArn)
		n.CertificateIAM = ptr.Clone(vc.IAMCertificateID)
		n.CertificateSource = config.CertificateSource(ptr.Deref(vc.CertificateSource, ""))
	}

	if c.Origins != nil {
		buckets := make([]string, 0, len(c.Origins.Items))
		for _, origin := range c.Origins.Items {
			bucket, err := t.Origins.OriginToBucket(origin)
			if err != nil {
				return config.Normalized{}, fmt.Errorf("origin %d: %w", len(buckets), err)
			}
			buckets = append(buckets, bucket)
		}
		n.S3Buckets = buckets
	}

	if c.Aliases != nil && c.Aliases.Items != nil {
		n.Domains = append([]string{}, c.Aliases.Items...)
	}

	return n, nil
}
