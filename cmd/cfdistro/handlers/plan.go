package handlers

import (
	"context"
	"fmt"
)

// Plan shows what Apply would do without writing anything.
func Plan(ctx context.Context, opts *Options) error {
	logger, flush, err := newLogger(opts.LogLevel)
	if err != nil {
		return err
	}
	defer flush()

	desired, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	r, err := newReconciler(ctx, opts, logger, nil)
	if err != nil {
		return err
	}

	p, err := r.Plan(ctx, desired)
	if err != nil {
		return fmt.Errorf("failed to plan distribution %q: %w", desired.Name, err)
	}

	fmt.Fprint(stdout, renderPlan(p))
	return nil
}
