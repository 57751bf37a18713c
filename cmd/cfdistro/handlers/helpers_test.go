package handlers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/imamik/cfdistro/internal/distribution"
	"github.com/imamik/cfdistro/internal/platform/cloudfront"
	"github.com/imamik/cfdistro/internal/reconcile"
)

const testConfigYAML = `name: foo
domains:
  - example.com
  - www.example.com
s3_buckets:
  - my-bucket
`

// fakeClient is an in-memory reconcile.Client.
type fakeClient struct {
	mu sync.Mutex

	summaries []distribution.Summary
	live      *distribution.Config
	etag      string
	err       error

	created []*distribution.Config
	updated []string
}

func (f *fakeClient) ListDistributions(context.Context) ([]distribution.Summary, error) {
	return f.summaries, f.err
}

func (f *fakeClient) GetDistributionConfig(context.Context, string) (*distribution.Config, string, error) {
	return f.live, f.etag, nil
}

func (f *fakeClient) CreateDistribution(_ context.Context, cfg *distribution.Config) (*distribution.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, cfg)
	return &distribution.Summary{ID: "E2NEW"}, nil
}

func (f *fakeClient) UpdateDistribution(_ context.Context, id string, _ *distribution.Config, etag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, id+"@"+etag)
	return nil
}

// fakeChecker records preflight calls.
type fakeChecker struct {
	buckets        []string
	requireWebsite bool
	err            error
}

func (f *fakeChecker) Preflight(_ context.Context, buckets []string, requireWebsite bool) error {
	f.buckets = buckets
	f.requireWebsite = requireWebsite
	return f.err
}

// stubHandlers replaces the factory variables and captures stdout.
func stubHandlers(t *testing.T, client reconcile.Client) *bytes.Buffer {
	t.Helper()

	origNewClient := newClient
	origNewBucketChecker := newBucketChecker
	origNewLogger := newLogger
	origGetenv := getenv
	origStdout := stdout

	t.Cleanup(func() {
		newClient = origNewClient
		newBucketChecker = origNewBucketChecker
		newLogger = origNewLogger
		getenv = origGetenv
		stdout = origStdout
	})

	var out bytes.Buffer
	stdout = &out
	getenv = func(string) string { return "" }
	newLogger = func(string) (logr.Logger, func(), error) {
		return logr.Discard(), func() {}, nil
	}
	newClient = func(context.Context, cloudfront.Options) (reconcile.Client, error) {
		return client, nil
	}
	return &out
}

// writeConfig writes content to a temporary config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfdistro.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testOptions(configPath string) *Options {
	return &Options{
		ConfigPath: configPath,
		OriginType: distribution.OriginKindWebsite,
		Region:     "eu-west-1",
		LogLevel:   "info",
	}
}
