package distribution

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/imamik/cfdistro/internal/config"
)

// equateEmpty treats nil and empty lists as equal so a provider that omits
// an empty list does not register as drift.
var equateEmpty = cmpopts.EquateEmpty()

// Equal reports whether two normalized configs describe the same distribution.
func Equal(live, desired config.Normalized) bool {
	return cmp.Equal(live, desired, equateEmpty)
}

// Diff returns a human-readable diff from live to desired, or "" when they are equal.
func Diff(live, desired config.Normalized) string {
	return cmp.Diff(live, desired, equateEmpty)
}
