package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/cfdistro/internal/config"
)

// saveAndRestoreInitFactories saves and restores init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	origFileExists := fileExists
	origIsInteractive := isInteractive
	origRunWizard := runWizard
	origSaveConfig := saveConfig

	t.Cleanup(func() {
		fileExists = origFileExists
		isInteractive = origIsInteractive
		runWizard = origRunWizard
		saveConfig = origSaveConfig
	})
}

func TestInit_WritesConfig(t *testing.T) {
	out := stubHandlers(t, nil)
	saveAndRestoreInitFactories(t)

	isInteractive = func() bool { return true }
	fileExists = func(string) bool { return true }
	runWizard = func(context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{
			Name:          "site",
			Buckets:       "site-bucket",
			Domains:       "example.com",
			HTTPSBehavior: config.ViewerHTTPSOnly,
			PriceClass:    config.PriceClass100,
		}, nil
	}

	var (
		saved *config.Desired
		path  string
	)
	saveConfig = func(d *config.Desired, p string) error {
		saved, path = d, p
		return nil
	}

	require.NoError(t, Init(context.Background(), "out.yaml"))

	require.NotNil(t, saved)
	assert.Equal(t, "out.yaml", path)
	assert.Equal(t, "site", saved.Name)
	assert.Equal(t, []string{"site-bucket"}, saved.S3Buckets)
	require.NotNil(t, saved.HTTPSBehavior)
	assert.Equal(t, config.ViewerHTTPSOnly, *saved.HTTPSBehavior)
	assert.Nil(t, saved.PriceClass)

	output := out.String()
	assert.Contains(t, output, "already exists")
	assert.Contains(t, output, "Configuration saved!")
	assert.Contains(t, output, "cfdistro apply")
}

func TestInit_RequiresTerminal(t *testing.T) {
	stubHandlers(t, nil)
	saveAndRestoreInitFactories(t)

	isInteractive = func() bool { return false }
	called := false
	runWizard = func(context.Context) (*config.WizardResult, error) {
		called = true
		return nil, errors.New("unexpected")
	}

	err := Init(context.Background(), "out.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
	assert.False(t, called)
}

func TestInit_WizardCanceled(t *testing.T) {
	stubHandlers(t, nil)
	saveAndRestoreInitFactories(t)

	isInteractive = func() bool { return true }
	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*config.WizardResult, error) {
		return nil, errors.New("user aborted")
	}
	saveConfig = func(*config.Desired, string) error {
		t.Fatal("config must not be written")
		return nil
	}

	err := Init(context.Background(), "out.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user aborted")
}
