package distribution

import "slices"

// Config is a CloudFront DistributionConfig restricted to the fields cfdistro manages.
// JSON names match the provider API exactly.
type Config struct {
	CallerReference      *string               `json:"CallerReference,omitempty"`
	Aliases              *StringList           `json:"Aliases,omitempty"`
	CacheBehaviors       *QuantityOnly         `json:"CacheBehaviors,omitempty"`
	Comment              *string               `json:"Comment,omitempty"`
	CustomErrorResponses *QuantityOnly         `json:"CustomErrorResponses,omitempty"`
	DefaultCacheBehavior *DefaultCacheBehavior `json:"DefaultCacheBehavior,omitempty"`
	DefaultRootObject    *string               `json:"DefaultRootObject,omitempty"`
	Enabled              *bool                 `json:"Enabled,omitempty"`
	HTTPVersion          *string               `json:"HttpVersion,omitempty"`
	IsIPV6Enabled        *bool                 `json:"IsIPV6Enabled,omitempty"`
	Logging              *Logging              `json:"Logging,omitempty"`
	Origins              *Origins              `json:"Origins,omitempty"`
	PriceClass           *string               `json:"PriceClass,omitempty"`
	Restrictions         *Restrictions         `json:"Restrictions,omitempty"`
	ViewerCertificate    *ViewerCertificate    `json:"ViewerCertificate,omitempty"`
	WebACLID             *string               `json:"WebACLId,omitempty"`
}

// StringList is the provider's {Quantity, Items} list shape.
type StringList struct {
	Quantity int32    `json:"Quantity"`
	Items    []string `json:"Items"`
}

// NewStringList returns a list whose Quantity matches its items. Items is never nil.
func NewStringList(items ...string) *StringList {
	cp := slices.Clone(items)
	if cp == nil {
		cp = []string{}
	}
	return &StringList{Quantity: int32(len(cp)), Items: cp}
}

// QuantityOnly is a list placeholder that is always empty.
type QuantityOnly struct {
	Quantity int32 `json:"Quantity"`
}

// DefaultCacheBehavior is the single cache behavior cfdistro manages.
type DefaultCacheBehavior struct {
	AllowedMethods             *AllowedMethods  `json:"AllowedMethods,omitempty"`
	Compress                   bool             `json:"Compress"`
	DefaultTTL                 int64            `json:"DefaultTTL"`
	ForwardedValues            *ForwardedValues `json:"ForwardedValues,omitempty"`
	LambdaFunctionAssociations *QuantityOnly    `json:"LambdaFunctionAssociations,omitempty"`
	MaxTTL                     int64            `json:"MaxTTL"`
	MinTTL                     int64            `json:"MinTTL"`
	SmoothStreaming            bool             `json:"SmoothStreaming"`
	TargetOriginID             string           `json:"TargetOriginId"`
	TrustedSigners             *TrustedSigners  `json:"TrustedSigners,omitempty"`
	ViewerProtocolPolicy       string           `json:"ViewerProtocolPolicy"`
}

// AllowedMethods lists the HTTP methods CloudFront processes and caches.
type AllowedMethods struct {
	Quantity      int32       `json:"Quantity"`
	Items         []string    `json:"Items"`
	CachedMethods *StringList `json:"CachedMethods,omitempty"`
}

// ForwardedValues controls what part of the viewer request is forwarded to the origin.
type ForwardedValues struct {
	Cookies              *Cookies      `json:"Cookies,omitempty"`
	Headers              *QuantityOnly `json:"Headers,omitempty"`
	QueryString          bool          `json:"QueryString"`
	QueryStringCacheKeys *QuantityOnly `json:"QueryStringCacheKeys,omitempty"`
}

// Cookies selects the cookie forwarding mode.
type Cookies struct {
	Forward string `json:"Forward"`
}

// TrustedSigners lists the accounts allowed to sign URLs. Enabled is true iff Items is non-empty.
type TrustedSigners struct {
	Enabled  bool     `json:"Enabled"`
	Quantity int32    `json:"Quantity"`
	Items    []string `json:"Items"`
}

// NewTrustedSigners builds a signer block consistent with the given account ids.
func NewTrustedSigners(accounts []string) *TrustedSigners {
	list := NewStringList(accounts...)
	return &TrustedSigners{
		Enabled:  list.Quantity > 0,
		Quantity: list.Quantity,
		Items:    list.Items,
	}
}

// Origins is the provider's origin list.
type Origins struct {
	Quantity int32    `json:"Quantity"`
	Items    []Origin `json:"Items"`
}

// Origin is one origin. Exactly one of CustomOriginConfig and S3OriginConfig is set.
type Origin struct {
	DomainName         string              `json:"DomainName"`
	ID                 string              `json:"Id"`
	CustomOriginConfig *CustomOriginConfig `json:"CustomOriginConfig,omitempty"`
	S3OriginConfig     *S3OriginConfig     `json:"S3OriginConfig,omitempty"`
	OriginPath         string              `json:"OriginPath"`
	CustomHeaders      QuantityOnly        `json:"CustomHeaders"`
}

// CustomOriginConfig describes an HTTP origin such as an S3 website endpoint.
type CustomOriginConfig struct {
	HTTPPort               int32       `json:"HTTPPort"`
	HTTPSPort              int32       `json:"HTTPSPort"`
	OriginProtocolPolicy   string      `json:"OriginProtocolPolicy"`
	OriginSslProtocols     *StringList `json:"OriginSslProtocols,omitempty"`
	OriginReadTimeout      int32       `json:"OriginReadTimeout"`
	OriginKeepaliveTimeout int32       `json:"OriginKeepaliveTimeout"`
}

// S3OriginConfig describes an S3 REST origin.
type S3OriginConfig struct {
	OriginAccessIdentity string `json:"OriginAccessIdentity"`
}

// Logging is the access log block. cfdistro always disables it.
type Logging struct {
	Enabled        bool   `json:"Enabled"`
	IncludeCookies bool   `json:"IncludeCookies"`
	Bucket         string `json:"Bucket"`
	Prefix         string `json:"Prefix"`
}

// Restrictions wraps the geo restriction block.
type Restrictions struct {
	GeoRestriction GeoRestriction `json:"GeoRestriction"`
}

// GeoRestriction is always "none" with no locations.
type GeoRestriction struct {
	RestrictionType string `json:"RestrictionType"`
	Quantity        int32  `json:"Quantity"`
}

// ViewerCertificate selects the TLS certificate served to viewers.
type ViewerCertificate struct {
	CloudFrontDefaultCertificate *bool   `json:"CloudFrontDefaultCertificate,omitempty"`
	Certificate                  *string `json:"Certificate,omitempty"`
	IAMCertificateID             *string `json:"IAMCertificateId,omitempty"`
	ACMCertificateArn            *string `json:"ACMCertificateArn,omitempty"`
	MinimumProtocolVersion       *string `json:"MinimumProtocolVersion,omitempty"`
	SSLSupportMethod             *string `json:"SSLSupportMethod,omitempty"`
	CertificateSource            *string `json:"CertificateSource,omitempty"`
}

// Summary is one entry of the distribution list.
type Summary struct {
	ID         string
	ARN        string
	DomainName string
	Comment    string
	Status     string
	Enabled    bool
	Aliases    []string
}

// Distribution is a live distribution with its full config and concurrency token.
type Distribution struct {
	ID         string
	DomainName string
	Config     *Config
	ETag       string
}
