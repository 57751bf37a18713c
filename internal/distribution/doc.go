// Package distribution translates between the user-facing distribution config
// ([config.Desired], [config.Normalized]) and CloudFront's DistributionConfig.
//
// [Config] mirrors the provider schema field for field. Optional scalars are
// pointers tagged omitempty so an unset value is left out of the serialized
// form instead of being sent as null, and every list block carries an
// explicit Quantity.
//
// Buckets become origins through an [OriginMapper] chosen at construction
// time: [WebsiteOrigins] targets S3 static website endpoints through a
// custom origin, [StorageOrigins] targets the S3 REST endpoint. Mapping an
// origin back to a bucket is strict and fails with [ErrUnrecognizedOrigin]
// for ids the active mapper does not produce.
//
// [Translator.ToProvider] and [Translator.ToDesired] are pure. For every
// valid normalized config x, ToDesired(ToProvider(x)) equals x.
package distribution
