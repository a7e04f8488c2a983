// ABOUTME: Generic priority-ordered strategy registry shared by feed discovery and comment-link extraction
// ABOUTME: Walks strategies lowest-priority-first with early exit and per-strategy error isolation

package strategy

import (
	"context"
	"errors"

	coreerrors "feedscout-api/core/errors"
	"feedscout-api/core/interfaces"
)

// Strategy is the capability every registered strategy exposes. Lower
// priority values run earlier; strategies with equal priority run in
// registration order.
type Strategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Priority is the strategy's ordinal position in the walk.
	Priority() int
}

// Report summarizes one walk for the caller. The discovery registry uses
// it to tell "nothing matched" apart from "everything that matched failed".
type Report struct {
	// Matched counts strategies whose match predicate accepted the input.
	Matched int

	// Errored counts matched strategies that returned an error.
	Errored int

	errs []error
}

// Err joins every per-strategy error collected during the walk, or nil
// when no strategy failed.
func (r Report) Err() error {
	return errors.Join(r.errs...)
}

// Registry holds strategies of type S sorted by ascending priority and
// runs them one at a time until one produces a usable result of type R.
// Register and Walk are not safe for concurrent use with each other;
// register everything at the composition root, then share freely.
type Registry[S Strategy, R any] struct {
	strategies []S
	logger     interfaces.Logger
}

// NewRegistry creates an empty registry. The logger receives one warning
// per failing strategy during walks.
func NewRegistry[S Strategy, R any](logger interfaces.Logger) *Registry[S, R] {
	return &Registry[S, R]{
		logger: logger,
	}
}

// Register inserts a strategy keeping the slice sorted by ascending
// priority. Insertion is stable: a strategy registered later sorts after
// earlier strategies of the same priority.
func (r *Registry[S, R]) Register(s S) {
	pos := len(r.strategies)
	for i, existing := range r.strategies {
		if s.Priority() < existing.Priority() {
			pos = i
			break
		}
	}

	r.strategies = append(r.strategies, s)
	copy(r.strategies[pos+1:], r.strategies[pos:])
	r.strategies[pos] = s
}

// Strategies returns the registered strategies in walk order.
func (r *Registry[S, R]) Strategies() []S {
	out := make([]S, len(r.strategies))
	copy(out, r.strategies)
	return out
}

// Walk tries each strategy in priority order. Strategies rejected by the
// match predicate are skipped without running. The first run returning
// ok=true ends the walk and its result is returned. A strategy error is
// logged, recorded in the report, and the walk continues; one strategy's
// failure never aborts the walk. The label names the input in logs.
func (r *Registry[S, R]) Walk(
	ctx context.Context,
	label string,
	match func(S) bool,
	run func(context.Context, S) (R, bool, error),
) (R, bool, Report) {
	var report Report
	var zero R

	for _, s := range r.strategies {
		if !match(s) {
			continue
		}
		report.Matched++

		result, ok, err := run(ctx, s)
		if err != nil {
			report.Errored++
			report.errs = append(report.errs, &coreerrors.ServiceError{
				Service: s.Name(),
				Err:     err,
			})
			if r.logger != nil {
				r.logger.Warn("strategy failed, continuing walk", map[string]interface{}{
					"strategy": s.Name(),
					"priority": s.Priority(),
					"input":    label,
					"error":    err.Error(),
				})
			}
			continue
		}

		if ok {
			return result, true, report
		}
	}

	return zero, false, report
}
