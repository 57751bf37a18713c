package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWizardName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateWizardName("static-site"))
	assert.Error(t, validateWizardName(""))
	assert.Error(t, validateWizardName("   "))
	assert.Error(t, validateWizardName(string(make([]byte, 129))))
}

func TestValidateWizardBuckets(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateWizardBuckets("a"))
	assert.NoError(t, validateWizardBuckets("a, b"))
	assert.Error(t, validateWizardBuckets(""))
	assert.Error(t, validateWizardBuckets(" , "))
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}

func TestWizardResult_ToDesired(t *testing.T) {
	t.Parallel()

	d := (&WizardResult{
		Name:          " site ",
		Buckets:       "primary, secondary",
		Domains:       "example.com",
		HTTPSBehavior: ViewerHTTPSOnly,
		PriceClass:    DefaultPriceClass,
	}).ToDesired()

	assert.Equal(t, "site", d.Name)
	assert.Equal(t, []string{"primary", "secondary"}, d.S3Buckets)
	assert.Equal(t, []string{"example.com"}, d.Domains)
	require.NotNil(t, d.HTTPSBehavior)
	assert.Equal(t, ViewerHTTPSOnly, *d.HTTPSBehavior)
	assert.Nil(t, d.PriceClass, "defaults are left unset")
	require.NoError(t, d.Validate())
}

func TestWizardResult_ToDesired_NoDomains(t *testing.T) {
	t.Parallel()

	d := (&WizardResult{Name: "site", Buckets: "b"}).ToDesired()
	assert.Nil(t, d.Domains)
	assert.Nil(t, d.HTTPSBehavior)
}
