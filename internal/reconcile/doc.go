// Package reconcile converges a named CloudFront distribution on its
// desired configuration.
//
// A Reconciler finds the distribution whose comment equals the configured
// name, translates both sides into the normalized model and then creates,
// updates or leaves the distribution alone. Every call performs at most one
// list, one get and one write, in that order, and never retries. Conflicts
// reported by the provider surface as distribution.ErrConflict.
package reconcile
