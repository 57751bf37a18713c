// Package configtest provides rapid generators for valid distribution configs.
package configtest

import (
	"pgregory.net/rapid"

	"github.com/imamik/cfdistro/internal/config"
)

// Desired generates configs that pass Validate, with optional fields randomly unset.
func Desired() *rapid.Generator[*config.Desired] {
	return rapid.Custom(func(t *rapid.T) *config.Desired {
		d := &config.Desired{
			Name:      rapid.StringMatching(`[a-z][a-z0-9-]{0,30}`).Draw(t, "name"),
			S3Buckets: rapid.SliceOfN(BucketName(), 1, 4).Draw(t, "buckets"),
		}

		if rapid.Bool().Draw(t, "hasDomains") {
			d.Domains = rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,10}\.(com|net|io)`), 0, 4).Draw(t, "domains")
		}
		if rapid.Bool().Draw(t, "hasSigners") {
			d.CacheTrustedSigners = rapid.SliceOfN(rapid.StringMatching(`[0-9]{12}`), 0, 3).Draw(t, "signers")
		}

		d.CacheForwardCookiesMode = rapid.Ptr(rapid.SampledFrom(config.ValidCookieModes()), true).Draw(t, "cookies")
		d.CacheForwardQueryString = rapid.Ptr(rapid.Bool(), true).Draw(t, "querystring")
		d.Enabled = rapid.Ptr(rapid.Bool(), true).Draw(t, "enabled")
		d.IPv6 = rapid.Ptr(rapid.Bool(), true).Draw(t, "ipv6")
		d.HTTPVersion = rapid.Ptr(rapid.SampledFrom([]string{"http2", "HTTP2", "Http1.1", "http3", "HTTP2and3"}), true).Draw(t, "httpVersion")
		d.HTTPSBehavior = rapid.Ptr(rapid.SampledFrom(config.ValidViewerPolicies()), true).Draw(t, "httpsBehavior")
		d.PriceClass = rapid.Ptr(rapid.SampledFrom(config.ValidPriceClasses()), true).Draw(t, "priceClass")
		d.RootObject = rapid.Ptr(rapid.SampledFrom([]string{"", "index.html", "app/index.html"}), true).Draw(t, "rootObject")

		switch rapid.SampledFrom([]string{"unset", "default", "acm", "iam"}).Draw(t, "certificate") {
		case "default":
			source := config.CertificateDefault
			d.CertificateSource = &source
		case "acm":
			source := config.CertificateACM
			arn := rapid.StringMatching(`arn:aws:acm:us-east-1:[0-9]{12}:certificate/[a-f0-9-]{8,36}`).Draw(t, "arn")
			d.CertificateSource = &source
			d.CertificateARN = &arn
		case "iam":
			source := config.CertificateIAM
			id := rapid.StringMatching(`ASCA[A-Z0-9]{8,17}`).Draw(t, "iamID")
			d.CertificateSource = &source
			d.CertificateIAM = &id
		}

		return d
	})
}

// Normalized generates normalized forms of valid Desired configs.
func Normalized() *rapid.Generator[config.Normalized] {
	return rapid.Custom(func(t *rapid.T) config.Normalized {
		return Desired().Draw(t, "desired").Normalize()
	})
}

// BucketName generates DNS-compatible S3 bucket names.
func BucketName() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z0-9][a-z0-9-]{2,20}`)
}
