package cloudfront

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/imamik/cfdistro/internal/distribution"
	"github.com/imamik/cfdistro/internal/util/ptr"
)

// toSDK converts a provider config into the SDK request shape.
// Absent optional blocks stay nil so they are not serialized.
func toSDK(c *distribution.Config) *types.DistributionConfig {
	if c == nil {
		return nil
	}

	out := &types.DistributionConfig{
		CallerReference:   ptr.Clone(c.CallerReference),
		Comment:           ptr.Clone(c.Comment),
		DefaultRootObject: ptr.Clone(c.DefaultRootObject),
		Enabled:           ptr.Clone(c.Enabled),
		HttpVersion:       types.HttpVersion(ptr.Deref(c.HTTPVersion, "")),
		IsIPV6Enabled:     ptr.Clone(c.IsIPV6Enabled),
		PriceClass:        types.PriceClass(ptr.Deref(c.PriceClass, "")),
		WebACLId:          ptr.Clone(c.WebACLID),
	}

	if c.Aliases != nil {
		out.Aliases = &types.Aliases{
			Quantity: aws.Int32(c.Aliases.Quantity),
			Items:    cloneStrings(c.Aliases.Items),
		}
	}
	if c.CacheBehaviors != nil {
		out.CacheBehaviors = &types.CacheBehaviors{Quantity: aws.Int32(c.CacheBehaviors.Quantity)}
	}
	if c.CustomErrorResponses != nil {
		out.CustomErrorResponses = &types.CustomErrorResponses{Quantity: aws.Int32(c.CustomErrorResponses.Quantity)}
	}
	if c.DefaultCacheBehavior != nil {
		out.DefaultCacheBehavior = cacheBehaviorToSDK(c.DefaultCacheBehavior)
	}
	if l := c.Logging; l != nil {
		out.Logging = &types.LoggingConfig{
			Enabled:        aws.Bool(l.Enabled),
			IncludeCookies: aws.Bool(l.IncludeCookies),
			Bucket:         aws.String(l.Bucket),
			Prefix:         aws.String(l.Prefix),
		}
	}
	if c.Origins != nil {
		items := make([]types.Origin, 0, len(c.Origins.Items))
		for _, o := range c.Origins.Items {
			items = append(items, originToSDK(o))
		}
		out.Origins = &types.Origins{Quantity: aws.Int32(c.Origins.Quantity), Items: items}
	}
	if r := c.Restrictions; r != nil {
		out.Restrictions = &types.Restrictions{
			GeoRestriction: &types.GeoRestriction{
				RestrictionType: types.GeoRestrictionType(r.GeoRestriction.RestrictionType),
				Quantity:        aws.Int32(r.GeoRestriction.Quantity),
			},
		}
	}
	if vc := c.ViewerCertificate; vc != nil {
		out.ViewerCertificate = &types.ViewerCertificate{
			ACMCertificateArn:            ptr.Clone(vc.ACMCertificateArn),
			Certificate:                  ptr.Clone(vc.Certificate),
			CertificateSource:            types.CertificateSource(ptr.Deref(vc.CertificateSource, "")),
			CloudFrontDefaultCertificate: ptr.Clone(vc.CloudFrontDefaultCertificate),
			IAMCertificateId:             ptr.Clone(vc.IAMCertificateID),
			MinimumProtocolVersion:       types.MinimumProtocolVersion(ptr.Deref(vc.MinimumProtocolVersion, "")),
			SSLSupportMethod:             types.SSLSupportMethod(ptr.Deref(vc.SSLSupportMethod, "")),
		}
	}

	return out
}

func cacheBehaviorToSDK(b *distribution.DefaultCacheBehavior) *types.DefaultCacheBehavior {
	out := &types.DefaultCacheBehavior{
		Compress:             aws.Bool(b.Compress),
		DefaultTTL:           aws.Int64(b.DefaultTTL),
		MaxTTL:               aws.Int64(b.MaxTTL),
		MinTTL:               aws.Int64(b.MinTTL),
		SmoothStreaming:      aws.Bool(b.SmoothStreaming),
		TargetOriginId:       aws.String(b.TargetOriginID),
		ViewerProtocolPolicy: types.ViewerProtocolPolicy(b.ViewerProtocolPolicy),
	}

	if am := b.AllowedMethods; am != nil {
		out.AllowedMethods = &types.AllowedMethods{
			Quantity: aws.Int32(am.Quantity),
			Items:    toEnums[types.Method](am.Items),
		}
		if cm := am.CachedMethods; cm != nil {
			out.AllowedMethods.CachedMethods = &types.CachedMethods{
				Quantity: aws.Int32(cm.Quantity),
				Items:    toEnums[types.Method](cm.Items),
			}
		}
	}
	if fv := b.ForwardedValues; fv != nil {
		out.ForwardedValues = &types.ForwardedValues{QueryString: aws.Bool(fv.QueryString)}
		if fv.Cookies != nil {
			out.ForwardedValues.Cookies = &types.CookiePreference{Forward: types.ItemSelection(fv.Cookies.Forward)}
		}
		if fv.Headers != nil {
			out.ForwardedValues.Headers = &types.Headers{Quantity: aws.Int32(fv.Headers.Quantity)}
		}
		if fv.QueryStringCacheKeys != nil {
			out.ForwardedValues.QueryStringCacheKeys = &types.QueryStringCacheKeys{Quantity: aws.Int32(fv.QueryStringCacheKeys.Quantity)}
		}
	}
	if lfa := b.LambdaFunctionAssociations; lfa != nil {
		out.LambdaFunctionAssociations = &types.LambdaFunctionAssociations{Quantity: aws.Int32(lfa.Quantity)}
	}
	if ts := b.TrustedSigners; ts != nil {
		out.TrustedSigners = &types.TrustedSigners{
			Enabled:  aws.Bool(ts.Enabled),
			Quantity: aws.Int32(ts.Quantity),
			Items:    cloneStrings(ts.Items),
		}
	}

	return out
}

func originToSDK(o distribution.Origin) types.Origin {
	out := types.Origin{
		DomainName:    aws.String(o.DomainName),
		Id:            aws.String(o.ID),
		OriginPath:    aws.String(o.OriginPath),
		CustomHeaders: &types.CustomHeaders{Quantity: aws.Int32(o.CustomHeaders.Quantity)},
	}
	if coc := o.CustomOriginConfig; coc != nil {
		out.CustomOriginConfig = &types.CustomOriginConfig{
			HTTPPort:               aws.Int32(coc.HTTPPort),
			HTTPSPort:              aws.Int32(coc.HTTPSPort),
			OriginProtocolPolicy:   types.OriginProtocolPolicy(coc.OriginProtocolPolicy),
			OriginReadTimeout:      aws.Int32(coc.OriginReadTimeout),
			OriginKeepaliveTimeout: aws.Int32(coc.OriginKeepaliveTimeout),
		}
		if p := coc.OriginSslProtocols; p != nil {
			out.CustomOriginConfig.OriginSslProtocols = &types.OriginSslProtocols{
				Quantity: aws.Int32(p.Quantity),
				Items:    toEnums[types.SslProtocol](p.Items),
			}
		}
	}
	if s3 := o.S3OriginConfig; s3 != nil {
		out.S3OriginConfig = &types.S3OriginConfig{OriginAccessIdentity: aws.String(s3.OriginAccessIdentity)}
	}
	return out
}

// fromSDK converts an SDK config into the provider model. The SDK reports
// the default certificate's source as "cloudfront", which maps to "".
func fromSDK(c *types.DistributionConfig) *distribution.Config {
	if c == nil {
		return nil
	}

	out := &distribution.Config{
		CallerReference:   ptr.Clone(c.CallerReference),
		Comment:           ptr.Clone(c.Comment),
		DefaultRootObject: ptr.Clone(c.DefaultRootObject),
		Enabled:           ptr.Clone(c.Enabled),
		IsIPV6Enabled:     ptr.Clone(c.IsIPV6Enabled),
		WebACLID:          ptr.Clone(c.WebACLId),
	}
	if c.HttpVersion != "" {
		out.HTTPVersion = ptr.String(string(c.HttpVersion))
	}
	if c.PriceClass != "" {
		out.PriceClass = ptr.String(string(c.PriceClass))
	}

	if a := c.Aliases; a != nil {
		out.Aliases = &distribution.StringList{Quantity: aws.ToInt32(a.Quantity), Items: cloneStrings(a.Items)}
	}
	if cb := c.CacheBehaviors; cb != nil {
		out.CacheBehaviors = &distribution.QuantityOnly{Quantity: aws.ToInt32(cb.Quantity)}
	}
	if cer := c.CustomErrorResponses; cer != nil {
		out.CustomErrorResponses = &distribution.QuantityOnly{Quantity: aws.ToInt32(cer.Quantity)}
	}
	if c.DefaultCacheBehavior != nil {
		out.DefaultCacheBehavior = cacheBehaviorFromSDK(c.DefaultCacheBehavior)
	}
	if l := c.Logging; l != nil {
		out.Logging = &distribution.Logging{
			Enabled:        aws.ToBool(l.Enabled),
			IncludeCookies: aws.ToBool(l.IncludeCookies),
			Bucket:         aws.ToString(l.Bucket),
			Prefix:         aws.ToString(l.Prefix),
		}
	}
	if o := c.Origins; o != nil {
		items := make([]distribution.Origin, 0, len(o.Items))
		for _, origin := range o.Items {
			items = append(items, originFromSDK(origin))
		}
		out.Origins = &distribution.Origins{Quantity: aws.ToInt32(o.Quantity), Items: items}
	}
	if r := c.Restrictions; r != nil && r.GeoRestriction != nil {
		out.Restrictions = &distribution.Restrictions{
			GeoRestriction: distribution.GeoRestriction{
				RestrictionType: string(r.GeoRestriction.RestrictionType),
				Quantity:        aws.ToInt32(r.GeoRestriction.Quantity),
			},
		}
	}
	if vc := c.ViewerCertificate; vc != nil {
		source := string(vc.CertificateSource)
		if vc.CertificateSource == types.CertificateSourceCloudfront {
			source = ""
		}
		out.ViewerCertificate = &distribution.ViewerCertificate{
			CloudFrontDefaultCertificate: ptr.Clone(vc.CloudFrontDefaultCertificate),
			Certificate:                  ptr.Clone(vc.Certificate),
			IAMCertificateID:             ptr.Clone(vc.IAMCertificateId),
			ACMCertificateArn:            ptr.Clone(vc.ACMCertificateArn),
			CertificateSource:            ptr.String(source),
		}
		if vc.MinimumProtocolVersion != "" {
			out.ViewerCertificate.MinimumProtocolVersion = ptr.String(string(vc.MinimumProtocolVersion))
		}
		if vc.SSLSupportMethod != "" {
			out.ViewerCertificate.SSLSupportMethod = ptr.String(string(vc.SSLSupportMethod))
		}
	}

	return out
}

func cacheBehaviorFromSDK(b *types.DefaultCacheBehavior) *distribution.DefaultCacheBehavior {
	out := &distribution.DefaultCacheBehavior{
		Compress:             aws.ToBool(b.Compress),
		DefaultTTL:           aws.ToInt64(b.DefaultTTL),
		MaxTTL:               aws.ToInt64(b.MaxTTL),
		MinTTL:               aws.ToInt64(b.MinTTL),
		SmoothStreaming:      aws.ToBool(b.SmoothStreaming),
		TargetOriginID:       aws.ToString(b.TargetOriginId),
		ViewerProtocolPolicy: string(b.ViewerProtocolPolicy),
	}

	if am := b.AllowedMethods; am != nil {
		out.AllowedMethods = &distribution.AllowedMethods{
			Quantity: aws.ToInt32(am.Quantity),
			Items:    fromEnums(am.Items),
		}
		if cm := am.CachedMethods; cm != nil {
			out.AllowedMethods.CachedMethods = &distribution.StringList{
				Quantity: aws.ToInt32(cm.Quantity),
				Items:    fromEnums(cm.Items),
			}
		}
	}
	if fv := b.ForwardedValues; fv != nil {
		out.ForwardedValues = &distribution.ForwardedValues{QueryString: aws.ToBool(fv.QueryString)}
		if fv.Cookies != nil {
			out.ForwardedValues.Cookies = &distribution.Cookies{Forward: string(fv.Cookies.Forward)}
		}
		if fv.Headers != nil {
			out.ForwardedValues.Headers = &distribution.QuantityOnly{Quantity: aws.ToInt32(fv.Headers.Quantity)}
		}
		if fv.QueryStringCacheKeys != nil {
			out.ForwardedValues.QueryStringCacheKeys = &distribution.QuantityOnly{Quantity: aws.ToInt32(fv.QueryStringCacheKeys.Quantity)}
		}
	}
	if lfa := b.LambdaFunctionAssociations; lfa != nil {
		out.LambdaFunctionAssociations = &distribution.QuantityOnly{Quantity: aws.ToInt32(lfa.Quantity)}
	}
	if ts := b.TrustedSigners; ts != nil {
		out.TrustedSigners = &distribution.TrustedSigners{
			Enabled:  aws.ToBool(ts.Enabled),
			Quantity: aws.ToInt32(ts.Quantity),
			Items:    cloneStrings(ts.Items),
		}
	}

	return out
}

func originFromSDK(o types.Origin) distribution.Origin {
	out := distribution.Origin{
		DomainName: aws.ToString(o.DomainName),
		ID:         aws.ToString(o.Id),
		OriginPath: aws.ToString(o.OriginPath),
	}
	if o.CustomHeaders != nil {
		out.CustomHeaders = distribution.QuantityOnly{Quantity: aws.ToInt32(o.CustomHeaders.Quantity)}
	}
	if coc := o.CustomOriginConfig; coc != nil {
		out.CustomOriginConfig = &distribution.CustomOriginConfig{
			HTTPPort:               aws.ToInt32(coc.HTTPPort),
			HTTPSPort:              aws.ToInt32(coc.HTTPSPort),
			OriginProtocolPolicy:   string(coc.OriginProtocolPolicy),
			OriginReadTimeout:      aws.ToInt32(coc.OriginReadTimeout),
			OriginKeepaliveTimeout: aws.ToInt32(coc.OriginKeepaliveTimeout),
		}
		if p := coc.OriginSslProtocols; p != nil {
			out.CustomOriginConfig.OriginSslProtocols = &distribution.StringList{
				Quantity: aws.ToInt32(p.Quantity),
				Items:    fromEnums(p.Items),
			}
		}
	}
	if s3 := o.S3OriginConfig; s3 != nil {
		out.S3OriginConfig = &distribution.S3OriginConfig{OriginAccessIdentity: aws.ToString(s3.OriginAccessIdentity)}
	}
	return out
}

// cloneStrings copies items; the result is never nil.
func cloneStrings(items []string) []string {
	return append([]string{}, items...)
}

func toEnums[T ~string](items []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, T(item))
	}
	return out
}

func fromEnums[T ~string](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return out
}
