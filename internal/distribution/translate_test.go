package distribution

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/util/ptr"
)

const websiteConfigJSON = `{
  "Aliases": {"Quantity": 2, "Items": ["example.com", "www.example.com"]},
  "CacheBehaviors": {"Quantity": 0},
  "Comment": "foo",
  "CustomErrorResponses": {"Quantity": 0},
  "DefaultCacheBehavior": {
    "AllowedMethods": {
      "Quantity": 2,
      "Items": ["GET", "HEAD"],
      "CachedMethods": {"Quantity": 2, "Items": ["GET", "HEAD"]}
    },
    "Compress": false,
    "DefaultTTL": 60,
    "ForwardedValues": {
      "Cookies": {"Forward": "none"},
      "Headers": {"Quantity": 0},
      "QueryString": false,
      "QueryStringCacheKeys": {"Quantity": 0}
    },
    "LambdaFunctionAssociations": {"Quantity": 0},
    "MaxTTL": 3600,
    "MinTTL": 0,
    "SmoothStreaming": false,
    "ViewerProtocolPolicy": "redirect-to-https",
    "TargetOriginId": "name-of-your-s3-bucket.s3-website-eu-west-1.amazonaws.com",
    "TrustedSigners": {"Enabled": false, "Quantity": 0, "Items": []}
  },
  "DefaultRootObject": "",
  "Enabled": true,
  "HttpVersion": "http2",
  "IsIPV6Enabled": true,
  "Logging": {"Enabled": false, "IncludeCookies": false, "Bucket": "", "Prefix": ""},
  "Origins": {
    "Quantity": 1,
    "Items": [{
      "DomainName": "name-of-your-s3-bucket.s3-website-eu-west-1.amazonaws.com",
      "Id": "name-of-your-s3-bucket.s3-website-eu-west-1.amazonaws.com",
      "CustomOriginConfig": {
        "HTTPPort": 80,
        "HTTPSPort": 443,
        "OriginProtocolPolicy": "http-only",
        "OriginSslProtocols": {"Quantity": 3, "Items": ["TLSv1", "TLSv1.1", "TLSv1.2"]},
        "OriginReadTimeout": 30,
        "OriginKeepaliveTimeout": 5
      },
      "OriginPath": "",
      "CustomHeaders": {"Quantity": 0}
    }]
  },
  "PriceClass": "PriceClass_100",
  "ViewerCertificate": {
    "CloudFrontDefaultCertificate": true,
    "SSLSupportMethod": "sni-only",
    "CertificateSource": "",
    "MinimumProtocolVersion": "TLSv1"
  },
  "Restrictions": {"GeoRestriction": {"RestrictionType": "none", "Quantity": 0}},
  "WebACLId": ""
}`

func websiteTranslator() Translator {
	return NewTranslator(WebsiteOrigins{Region: "eu-west-1"})
}

func TestToProvider_WebsiteDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := websiteTranslator().Render(&config.Desired{
		Name:      "foo",
		Domains:   []string{"example.com", "www.example.com"},
		S3Buckets: []string{"name-of-your-s3-bucket"},
	})
	require.NoError(t, err)

	got, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, websiteConfigJSON, string(got))
}

func TestToProvider_DefaultCacheBehavior(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(StorageOrigins{})
	cfg := tr.ToProvider((&config.Desired{
		Name:      "foo",
		Domains:   []string{"example.com", "www.example.com"},
		S3Buckets: []string{"my-bucket", "other-bucket"},
	}).Normalize())

	dcb := cfg.DefaultCacheBehavior
	require.NotNil(t, dcb)
	assert.Equal(t, "redirect-to-https", dcb.ViewerProtocolPolicy)
	assert.Equal(t, &TrustedSigners{Enabled: false, Quantity: 0, Items: []string{}}, dcb.TrustedSigners)
	assert.Equal(t, "S3-my-bucket", dcb.TargetOriginID)
	assert.Equal(t, tr.Origins.BucketToOrigin("my-bucket").ID, dcb.TargetOriginID)

	require.NotNil(t, cfg.Origins)
	assert.Equal(t, int32(2), cfg.Origins.Quantity)
	assert.Equal(t, "my-bucket.s3.amazonaws.com", cfg.Origins.Items[0].DomainName)
	assert.Equal(t, "S3-other-bucket", cfg.Origins.Items[1].ID)
}

func TestToProvider_TrustedSigners(t *testing.T) {
	t.Parallel()

	cfg := websiteTranslator().ToProvider((&config.Desired{
		Name:                "foo",
		S3Buckets:           []string{"b"},
		CacheTrustedSigners: []string{"222222222222", "111111111111"},
	}).Normalize())

	assert.Equal(t, &TrustedSigners{
		Enabled:  true,
		Quantity: 2,
		Items:    []string{"111111111111", "222222222222"},
	}, cfg.DefaultCacheBehavior.TrustedSigners)
}

func TestToProvider_Certificates(t *testing.T) {
	t.Parallel()

	acm := config.CertificateACM
	iam := config.CertificateIAM
	arn := "arn:aws:acm:us-east-1:123456789012:certificate/abc"

	tests := []struct {
		name    string
		desired *config.Desired
		want    *ViewerCertificate
	}{
		{
			name:    "default certificate",
			desired: &config.Desired{Name: "foo", S3Buckets: []string{"b"}},
			want: &ViewerCertificate{
				CloudFrontDefaultCertificate: ptr.Bool(true),
				MinimumProtocolVersion:       ptr.String("TLSv1"),
				SSLSupportMethod:             ptr.String("sni-only"),
				CertificateSource:            ptr.String(""),
			},
		},
		{
			name: "acm certificate",
			desired: &config.Desired{
				Name: "foo", S3Buckets: []string{"b"},
				CertificateSource: &acm, CertificateARN: ptr.String(arn),
			},
			want: &ViewerCertificate{
				CloudFrontDefaultCertificate: ptr.Bool(false),
				Certificate:                  ptr.String(arn),
				ACMCertificateArn:            ptr.String(arn),
				MinimumProtocolVersion:       ptr.String("TLSv1"),
				SSLSupportMethod:             ptr.String("sni-only"),
				CertificateSource:            ptr.String("acm"),
			},
		},
		{
			name: "iam certificate",
			desired: &config.Desired{
				Name: "foo", S3Buckets: []string{"b"},
				CertificateSource: &iam, CertificateIAM: ptr.String("ASCAEXAMPLE"),
			},
			want: &ViewerCertificate{
				CloudFrontDefaultCertificate: ptr.Bool(false),
				Certificate:                  ptr.String("ASCAEXAMPLE"),
				IAMCertificateID:             ptr.String("ASCAEXAMPLE"),
				MinimumProtocolVersion:       ptr.String("TLSv1"),
				SSLSupportMethod:             ptr.String("sni-only"),
				CertificateSource:            ptr.String("iam"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := websiteTranslator().Render(tt.desired)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ViewerCertificate)
		})
	}
}

func TestToProvider_UnknownCertificateSourceUsesDefault(t *testing.T) {
	t.Parallel()

	n := config.Default()
	n.Name = "foo"
	n.S3Buckets = []string{"b"}
	n.CertificateSource = "cloudfront"
	n.CertificateARN = ptr.String("ignored")

	vc := websiteTranslator().ToProvider(n).ViewerCertificate
	assert.Equal(t, ptr.Bool(true), vc.CloudFrontDefaultCertificate)
	assert.Equal(t, ptr.String(""), vc.CertificateSource)
	assert.Nil(t, vc.ACMCertificateArn)
	assert.Nil(t, vc.Certificate)
}

func TestRender_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := websiteTranslator().Render(&config.Desired{Domains: []string{"example.com"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestToDesired_ReadsProviderConfig(t *testing.T) {
	t.Parallel()

	var live Config
	require.NoError(t, json.Unmarshal([]byte(websiteConfigJSON), &live))
	live.DefaultRootObject = ptr.String("index.html")
	live.HTTPVersion = ptr.String("HTTP2")

	got, err := websiteTranslator().ToDesired(&live)
	require.NoError(t, err)

	want := config.Default()
	want.Name = "foo"
	want.Domains = []string{"example.com", "www.example.com"}
	want.S3Buckets = []string{"name-of-your-s3-bucket"}
	want.RootObject = "index.html"
	assert.Equal(t, want, got)
}

func TestToDesired_CopiesCertificateFieldsVerbatim(t *testing.T) {
	t.Parallel()

	live := &Config{
		Comment: ptr.String("foo"),
		ViewerCertificate: &ViewerCertificate{
			CloudFrontDefaultCertificate: ptr.Bool(true),
			ACMCertificateArn:            ptr.String("arn"),
			IAMCertificateID:             ptr.String("iam"),
			CertificateSource:            ptr.String("iam"),
		},
	}

	got, err := websiteTranslator().ToDesired(live)
	require.NoError(t, err)
	assert.Equal(t, ptr.String("arn"), got.CertificateARN)
	assert.Equal(t, ptr.String("iam"), got.CertificateIAM)
	assert.Equal(t, config.CertificateIAM, got.CertificateSource)
}

func TestToDesired_SignersWithoutForwardedValues(t *testing.T) {
	t.Parallel()

	live := &Config{
		Comment: ptr.String("foo"),
		DefaultCacheBehavior: &DefaultCacheBehavior{
			ViewerProtocolPolicy: "https-only",
			TrustedSigners: &TrustedSigners{
				Enabled:  true,
				Quantity: 1,
				Items:    []string{"123456789012"},
			},
		},
	}

	got, err := websiteTranslator().ToDesired(live)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.CacheTrustedSigners)
	assert.Equal(t, config.CookiesNone, got.CacheForwardCookiesMode)
	assert.False(t, got.CacheForwardQueryString)
	assert.Equal(t, config.ViewerHTTPSOnly, got.HTTPSBehavior)

	again, err := websiteTranslator().ToDesired(live)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestToDesired_SignersWithForwardedValues(t *testing.T) {
	t.Parallel()

	live := &Config{
		DefaultCacheBehavior: &DefaultCacheBehavior{
			ForwardedValues: &ForwardedValues{Cookies: &Cookies{Forward: "all"}, QueryString: true},
			TrustedSigners:  &TrustedSigners{Enabled: true, Quantity: 2, Items: []string{"2", "1"}},
		},
	}

	got, err := websiteTranslator().ToDesired(live)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got.CacheTrustedSigners)
	assert.Equal(t, config.CookiesAll, got.CacheForwardCookiesMode)
	assert.True(t, got.CacheForwardQueryString)
}

func TestToDesired_UnrecognizedOrigin(t *testing.T) {
	t.Parallel()

	live := &Config{
		Origins: &Origins{
			Quantity: 1,
			Items:    []Origin{{ID: "my-api.example.com", DomainName: "my-api.example.com"}},
		},
	}

	_, err := websiteTranslator().ToDesired(live)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedOrigin)
	assert.Contains(t, err.Error(), "my-api.example.com")
}

func TestToDesired_EmptyConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	got, err := websiteTranslator().ToDesired(&Config{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestToDesired_Nil(t *testing.T) {
	t.Parallel()

	_, err := websiteTranslator().ToDesired(nil)
	assert.Error(t, err)
}
