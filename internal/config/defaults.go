package config

import (
	"slices"
	"strings"

	"github.com/imamik/cfdistro/internal/util/ptr"
)

// Default values applied to unset Desired fields.
const (
	DefaultCookieMode    = CookiesNone
	DefaultHTTPVersion   = "http2"
	DefaultHTTPSBehavior = ViewerRedirectToHTTPS
	DefaultPriceClass    = PriceClass100
)

// Default returns the Default Configuration table.
// Each call returns a fresh value; callers may modify it freely.
func Default() Normalized {
	return Normalized{
		Domains:                 []string{},
		S3Buckets:               []string{},
		CacheForwardCookiesMode: DefaultCookieMode,
		CacheForwardQueryString: false,
		CacheTrustedSigners:     []string{},
		CertificateSource:       CertificateDefault,
		Enabled:                 true,
		HTTPVersion:             DefaultHTTPVersion,
		HTTPSBehavior:           DefaultHTTPSBehavior,
		IPv6:                    true,
		PriceClass:              DefaultPriceClass,
		RootObject:              "",
	}
}

// Normalize overlays the set fields of d on base. Values from d win.
//
// The result is canonical: http_version is lower case, trusted signers are
// sorted without duplicates and list fields are never nil.
func Normalize(d *Desired, base Normalized) Normalized {
	n := base.Clone()
	if d != nil {
		if d.Name != "" {
			n.Name = d.Name
		}
		if d.Domains != nil {
			n.Domains = slices.Clone(d.Domains)
		}
		if d.S3Buckets != nil {
			n.S3Buckets = slices.Clone(d.S3Buckets)
		}
		if d.CacheForwardCookiesMode != nil {
			n.CacheForwardCookiesMode = *d.CacheForwardCookiesMode
		}
		if d.CacheForwardQueryString != nil {
			n.CacheForwardQueryString = *d.CacheForwardQueryString
		}
		if d.CacheTrustedSigners != nil {
			n.CacheTrustedSigners = slices.Clone(d.CacheTrustedSigners)
		}
		if d.CertificateSource != nil {
			n.CertificateSource = *d.CertificateSource
		}
		if d.CertificateARN != nil {
			n.CertificateARN = ptr.Clone(d.CertificateARN)
		}
		if d.CertificateIAM != nil {
			n.CertificateIAM = ptr.Clone(d.CertificateIAM)
		}
		if d.Enabled != nil {
			n.Enabled = *d.Enabled
		}
		if d.HTTPVersion != nil {
			n.HTTPVersion = *d.HTTPVersion
		}
		if d.HTTPSBehavior != nil {
			n.HTTPSBehavior = *d.HTTPSBehavior
		}
		if d.IPv6 != nil {
			n.IPv6 = *d.IPv6
		}
		if d.PriceClass != nil {
			n.PriceClass = *d.PriceClass
		}
		if d.RootObject != nil {
			n.RootObject = *d.RootObject
		}
	}

	n.HTTPVersion = strings.ToLower(n.HTTPVersion)
	n.CacheTrustedSigners = CanonicalSigners(n.CacheTrustedSigners)
	if n.Domains == nil {
		n.Domains = []string{}
	}
	if n.S3Buckets == nil {
		n.S3Buckets = []string{}
	}
	return n
}

// Normalize is shorthand for Normalize(d, Default()).
func (d *Desired) Normalize() Normalized {
	return Normalize(d, Default())
}

// CanonicalSigners returns the signer set sorted and without duplicates.
func CanonicalSigners(signers []string) []string {
	out := slices.Clone(signers)
	if out == nil {
		return []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Clone returns a deep copy of n.
func (n Normalized) Clone() Normalized {
	c := n
	c.Domains = slices.Clone(n.Domains)
	c.S3Buckets = slices.Clone(n.S3Buckets)
	c.CacheTrustedSigners = slices.Clone(n.CacheTrustedSigners)
	c.CertificateARN = ptr.Clone(n.CertificateARN)
	c.CertificateIAM = ptr.Clone(n.CertificateIAM)
	return c
}

// Desired returns n as a fully specified Desired config.
func (n Normalized) Desired() *Desired {
	c := n.Clone()
	return &Desired{
		Name:                    c.Name,
		Domains:                 c.Domains,
		S3Buckets:               c.S3Buckets,
		CacheForwardCookiesMode: &c.CacheForwardCookiesMode,
		CacheForwardQueryString: &c.CacheForwardQueryString,
		CacheTrustedSigners:     c.CacheTrustedSigners,
		CertificateSource:       &c.CertificateSource,
		CertificateARN:          c.CertificateARN,
		CertificateIAM:          c.CertificateIAM,
		Enabled:                 &c.Enabled,
		HTTPVersion:             &c.HTTPVersion,
		HTTPSBehavior:           &c.HTTPSBehavior,
		IPv6:                    &c.IPv6,
		PriceClass:              &c.PriceClass,
		RootObject:              &c.RootObject,
	}
}
