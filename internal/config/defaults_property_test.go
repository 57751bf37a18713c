package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/config/configtest"
)

func TestNormalize_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := configtest.Desired().Draw(t, "desired")

		once := d.Normalize()
		twice := once.Desired().Normalize()

		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("normalize is not idempotent (-once +twice):\n%s", diff)
		}
	})
}

func TestNormalize_GeneratedConfigsValidate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := configtest.Desired().Draw(t, "desired")
		if err := d.Validate(); err != nil {
			t.Fatalf("generated config is invalid: %v", err)
		}
		if err := d.Normalize().Desired().Validate(); err != nil {
			t.Fatalf("normalized config is invalid: %v", err)
		}
	})
}

func TestNormalize_DefaultsAreOverlaid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := configtest.Desired().Draw(t, "desired")
		n := d.Normalize()

		if d.Enabled == nil && n.Enabled != config.Default().Enabled {
			t.Fatalf("unset enabled should default to %v", config.Default().Enabled)
		}
		if d.PriceClass == nil && n.PriceClass != config.DefaultPriceClass {
			t.Fatalf("unset price class should default to %s, got %s", config.DefaultPriceClass, n.PriceClass)
		}
		if d.PriceClass != nil && n.PriceClass != *d.PriceClass {
			t.Fatalf("desired price class %s should win, got %s", *d.PriceClass, n.PriceClass)
		}
	})
}
