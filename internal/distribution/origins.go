package distribution

import (
	"errors"
	"fmt"
	"strings"
)

// Origin mapping kinds accepted by OriginMapperFor.
const (
	OriginKindWebsite = "website"
	OriginKindS3      = "s3"
)

// Fixed settings of the custom origin used for S3 website endpoints.
const (
	websiteHTTPPort         = 80
	websiteHTTPSPort        = 443
	websiteProtocolPolicy   = "http-only"
	websiteReadTimeout      = 30
	websiteKeepaliveTimeout = 5

	storageIDPrefix = "S3-"
	storageHost     = "s3.amazonaws.com"
)

var websiteSSLProtocols = []string{"TLSv1", "TLSv1.1", "TLSv1.2"}

// OriginMapper converts bucket names to origins and back.
type OriginMapper interface {
	// BucketToOrigin returns the origin serving the bucket.
	BucketToOrigin(bucket string) Origin
	// OriginToBucket returns the bucket behind the origin, or ErrUnrecognizedOrigin.
	OriginToBucket(origin Origin) (string, error)
}

// WebsiteOrigins maps buckets to their S3 static website endpoint in Region.
// Origin id and domain are both "<bucket>.s3-website-<region>.amazonaws.com".
type WebsiteOrigins struct {
	Region string
}

func (w WebsiteOrigins) host() string {
	return "s3-website-" + w.Region + ".amazonaws.com"
}

// BucketToOrigin implements OriginMapper.
func (w WebsiteOrigins) BucketToOrigin(bucket string) Origin {
	domain := bucket + "." + w.host()
	return Origin{
		DomainName: domain,
		ID:         domain,
		CustomOriginConfig: &CustomOriginConfig{
			HTTPPort:               websiteHTTPPort,
			HTTPSPort:              websiteHTTPSPort,
			OriginProtocolPolicy:   websiteProtocolPolicy,
			OriginSslProtocols:     NewStringList(websiteSSLProtocols...),
			OriginReadTimeout:      websiteReadTimeout,
			OriginKeepaliveTimeout: websiteKeepaliveTimeout,
		},
		OriginPath:    "",
		CustomHeaders: QuantityOnly{Quantity: 0},
	}
}

// OriginToBucket implements OriginMapper.
func (w WebsiteOrigins) OriginToBucket(origin Origin) (string, error) {
	bucket, ok := strings.CutSuffix(origin.ID, "."+w.host())
	if !ok || bucket == "" {
		return "", fmt.Errorf("%w: %q does not end in .%s", ErrUnrecognizedOrigin, origin.ID, w.host())
	}
	return bucket, nil
}

// StorageOrigins maps buckets to the S3 REST endpoint.
// The origin id is "S3-<bucket>" and the domain "<bucket>.s3.amazonaws.com".
type StorageOrigins struct{}

// BucketToOrigin implements OriginMapper.
func (StorageOrigins) BucketToOrigin(bucket string) Origin {
	return Origin{
		DomainName:     bucket + "." + storageHost,
		ID:             storageIDPrefix + bucket,
		S3OriginConfig: &S3OriginConfig{OriginAccessIdentity: ""},
		OriginPath:     "",
		CustomHeaders:  QuantityOnly{Quantity: 0},
	}
}

// OriginToBucket implements OriginMapper.
func (StorageOrigins) OriginToBucket(origin Origin) (string, error) {
	bucket, ok := strings.CutPrefix(origin.ID, storageIDPrefix)
	if !ok || bucket == "" {
		return "", fmt.Errorf("%w: %q does not start with %s", ErrUnrecognizedOrigin, origin.ID, storageIDPrefix)
	}
	return bucket, nil
}

// OriginMapperFor returns the mapper for kind. An empty kind selects the website mapping.
func OriginMapperFor(kind, region string) (OriginMapper, error) {
	switch kind {
	case "", OriginKindWebsite:
		if region == "" {
			return nil, errors.New("website origins require a region")
		}
		return WebsiteOrigins{Region: region}, nil
	case OriginKindS3:
		return StorageOrigins{}, nil
	default:
		return nil, fmt.Errorf("unknown origin type %q: must be %s or %s", kind, OriginKindWebsite, OriginKindS3)
	}
}
