package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/cfdistro/internal/config"
	"github.com/imamik/cfdistro/internal/distribution"
	"github.com/imamik/cfdistro/internal/util/ptr"
)

// Reconciler drives a distribution towards its desired configuration.
type Reconciler struct {
	client     Client
	translator distribution.Translator
	logger     logr.Logger
	metrics    *Metrics
	now        func() time.Time
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(r *Reconciler) {
		r.logger = l
	}
}

// WithMetrics records every Reconcile call in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Reconciler) {
		r.metrics = m
	}
}

// New creates a Reconciler using client for provider calls and translator
// for the config mapping.
func New(client Client, translator distribution.Translator, opts ...Option) *Reconciler {
	r := &Reconciler{
		client:     client,
		translator: translator,
		logger:     logr.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plan describes what Reconcile would do.
type Plan struct {
	// Outcome is the result a Reconcile call would have.
	Outcome Outcome
	// Name is the distribution name, i.e. its comment.
	Name string
	// Existing is the matched live distribution, nil when one would be created.
	Existing *distribution.Distribution
	// Config is the provider config that would be written.
	Config *distribution.Config
	// Desired is the normalized desired config.
	Desired config.Normalized
	// Diff is a readable diff from the live to the desired config.
	// For a create it is taken against the empty config.
	Diff string
}

// FindDistribution returns the first distribution whose comment equals name,
// with its config and ETag. It returns nil, nil when there is none.
func (r *Reconciler) FindDistribution(ctx context.Context, name string) (*distribution.Distribution, error) {
	summaries, err := r.client.ListDistributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}

	for _, s := range summaries {
		if s.Comment != name {
			continue
		}
		cfg, etag, err := r.client.GetDistributionConfig(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get config of distribution %s: %w", s.ID, err)
		}
		r.logger.V(1).Info("found distribution", "name", name, "id", s.ID, "etag", etag)
		return &distribution.Distribution{
			ID:         s.ID,
			DomainName: s.DomainName,
			Config:     cfg,
			ETag:       etag,
		}, nil
	}

	r.logger.V(1).Info("no distribution found", "name", name, "scanned", len(summaries))
	return nil, nil
}

// Plan validates d, looks up the live distribution and decides what to do
// without writing anything. Validation happens before any provider call.
func (r *Reconciler) Plan(ctx context.Context, d *config.Desired) (*Plan, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	desired := d.Normalize()

	existing, err := r.FindDistribution(ctx, desired.Name)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Name:     desired.Name,
		Existing: existing,
		Config:   r.translator.ToProvider(desired),
		Desired:  desired,
	}

	if existing == nil {
		p.Outcome = Created
		p.Config.CallerReference = ptr.String(desired.Name)
		p.Diff = distribution.Diff(config.Normalized{}, desired)
		return p, nil
	}

	live, err := r.translator.ToDesired(existing.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to read distribution %s: %w", existing.ID, err)
	}

	if distribution.Equal(live, desired) {
		p.Outcome = Unchanged
		return p, nil
	}

	p.Outcome = Updated
	p.Diff = distribution.Diff(live, desired)
	callerRef := ""
	if existing.Config != nil {
		callerRef = ptr.Deref(existing.Config.CallerReference, "")
	}
	if callerRef == "" {
		callerRef = desired.Name
	}
	p.Config.CallerReference = ptr.String(callerRef)
	return p, nil
}

// Reconcile makes the distribution named by d match d.
func (r *Reconciler) Reconcile(ctx context.Context, d *config.Desired) (Outcome, error) {
	start := r.now()
	outcome, err := r.reconcile(ctx, d)

	result := outcome.String()
	if err != nil {
		result = resultError
	}
	r.metrics.record(result, r.now().Sub(start).Seconds())
	return outcome, err
}

func (r *Reconciler) reconcile(ctx context.Context, d *config.Desired) (Outcome, error) {
	p, err := r.Plan(ctx, d)
	if err != nil {
		return 0, err
	}
	logger := r.logger.WithValues("name", p.Name)

	switch p.Outcome {
	case Created:
		summary, err := r.client.CreateDistribution(ctx, p.Config)
		if err != nil {
			return 0, fmt.Errorf("failed to create distribution %q: %w", p.Name, err)
		}
		if summary != nil {
			logger = logger.WithValues("id", summary.ID, "domain", summary.DomainName)
		}
		logger.Info("created distribution")
	case Updated:
		logger = logger.WithValues("id", p.Existing.ID)
		logger.V(1).Info("distribution drifted", "diff", p.Diff)
		if err := r.client.UpdateDistribution(ctx, p.Existing.ID, p.Config, p.Existing.ETag); err != nil {
			return 0, fmt.Errorf("failed to update distribution %s: %w", p.Existing.ID, err)
		}
		logger.Info("updated distribution")
	case Unchanged:
		logger.Info("distribution up to date", "id", p.Existing.ID)
	}

	return p.Outcome, nil
}
