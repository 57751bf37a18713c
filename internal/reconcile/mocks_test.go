package reconcile

import (
	"context"
	"sync"

	"github.com/imamik/cfdistro/internal/distribution"
)

// MockClient is a mock implementation of Client for testing.
type MockClient struct {
	mu sync.Mutex

	// Configurable responses
	ListDistributionsFunc     func(ctx context.Context) ([]distribution.Summary, error)
	GetDistributionConfigFunc func(ctx context.Context, id string) (*distribution.Config, string, error)
	CreateDistributionFunc    func(ctx context.Context, cfg *distribution.Config) (*distribution.Summary, error)
	UpdateDistributionFunc    func(ctx context.Context, id string, cfg *distribution.Config, etag string) error

	// Call tracking
	Calls                     []string
	GetDistributionConfigArgs []string
	CreateDistributionCalls   []*distribution.Config
	UpdateDistributionCalls   []UpdateDistributionCall
}

// UpdateDistributionCall tracks arguments to UpdateDistribution.
type UpdateDistributionCall struct {
	ID     string
	Config *distribution.Config
	ETag   string
}

func (m *MockClient) track(call string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, call)
	m.mu.Unlock()
}

func (m *MockClient) ListDistributions(ctx context.Context) ([]distribution.Summary, error) {
	m.track("list")

	if m.ListDistributionsFunc != nil {
		return m.ListDistributionsFunc(ctx)
	}
	return nil, nil
}

func (m *MockClient) GetDistributionConfig(ctx context.Context, id string) (*distribution.Config, string, error) {
	m.track("get")
	m.mu.Lock()
	m.GetDistributionConfigArgs = append(m.GetDistributionConfigArgs, id)
	m.mu.Unlock()

	if m.GetDistributionConfigFunc != nil {
		return m.GetDistributionConfigFunc(ctx, id)
	}
	return &distribution.Config{}, "ETAG", nil
}

func (m *MockClient) CreateDistribution(ctx context.Context, cfg *distribution.Config) (*distribution.Summary, error) {
	m.track("create")
	m.mu.Lock()
	m.CreateDistributionCalls = append(m.CreateDistributionCalls, cfg)
	m.mu.Unlock()

	if m.CreateDistributionFunc != nil {
		return m.CreateDistributionFunc(ctx, cfg)
	}
	return &distribution.Summary{ID: "E2NEW", DomainName: "d111.cloudfront.net"}, nil
}

func (m *MockClient) UpdateDistribution(ctx context.Context, id string, cfg *distribution.Config, etag string) error {
	m.track("update")
	m.mu.Lock()
	m.UpdateDistributionCalls = append(m.UpdateDistributionCalls, UpdateDistributionCall{ID: id, Config: cfg, ETag: etag})
	m.mu.Unlock()

	if m.UpdateDistributionFunc != nil {
		return m.UpdateDistributionFunc(ctx, id, cfg, etag)
	}
	return nil
}

// writes returns the number of create and update calls.
func (m *MockClient) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CreateDistributionCalls) + len(m.UpdateDistributionCalls)
}
