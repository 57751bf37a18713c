package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the answers collected by RunWizard.
type WizardResult struct {
	Name          string
	Domains       string
	Buckets       string
	HTTPSBehavior ViewerPolicy
	PriceClass    PriceClass
}

// RunWizard asks for the handful of fields most distributions need.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		HTTPSBehavior: DefaultHTTPSBehavior,
		PriceClass:    DefaultPriceClass,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Distribution name").
				Description("Stored as the distribution comment; must be unique in the account").
				Placeholder("static-site").
				Value(&result.Name).
				Validate(validateWizardName),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("S3 buckets").
				Description("Comma-separated; the first bucket is the default origin").
				Placeholder("my-site-bucket").
				Value(&result.Buckets).
				Validate(validateWizardBuckets),

			huh.NewInput().
				Title("Domains (optional)").
				Description("Comma-separated alternate domain names").
				Placeholder("example.com, www.example.com").
				Value(&result.Domains),
		),

		huh.NewGroup(
			huh.NewSelect[ViewerPolicy]().
				Title("Viewer protocol policy").
				Options(
					huh.NewOption(ViewerRedirectToHTTPS.String(), ViewerRedirectToHTTPS),
					huh.NewOption(ViewerHTTPSOnly.String(), ViewerHTTPSOnly),
					huh.NewOption(ViewerAllowAll.String(), ViewerAllowAll),
				).
				Value(&result.HTTPSBehavior),

			huh.NewSelect[PriceClass]().
				Title("Price class").
				Options(
					huh.NewOption(PriceClass100.String(), PriceClass100),
					huh.NewOption(PriceClass200.String(), PriceClass200),
					huh.NewOption(PriceClassAll.String(), PriceClassAll),
				).
				Value(&result.PriceClass),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToDesired converts the wizard answers to a Desired config.
// Fields equal to their defaults are left unset to keep the written file short.
func (r *WizardResult) ToDesired() *Desired {
	d := &Desired{
		Name:      strings.TrimSpace(r.Name),
		S3Buckets: splitList(r.Buckets),
		Domains:   splitList(r.Domains),
	}
	if len(d.Domains) == 0 {
		d.Domains = nil
	}
	if r.HTTPSBehavior != "" && r.HTTPSBehavior != DefaultHTTPSBehavior {
		policy := r.HTTPSBehavior
		d.HTTPSBehavior = &policy
	}
	if r.PriceClass != "" && r.PriceClass != DefaultPriceClass {
		class := r.PriceClass
		d.PriceClass = &class
	}
	return d
}

func validateWizardName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("distribution name is required")
	}
	if len(s) > maxNameLength {
		return fmt.Errorf("distribution name must be %d characters or less", maxNameLength)
	}
	return nil
}

func validateWizardBuckets(s string) error {
	if len(splitList(s)) == 0 {
		return errors.New("at least one bucket is required")
	}
	return nil
}

// splitList splits a comma-separated answer and drops empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
