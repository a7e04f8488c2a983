// ABOUTME: Discovery registry orchestrates feed discovery services in priority order
// ABOUTME: Owns the per-call session so deduplication state never leaks across discovery calls

package discovery

import (
	"context"
	"errors"

	"feedscout-api/core/domain"
	"feedscout-api/core/interfaces"
	"feedscout-api/core/strategy"
)

// ErrNoFeeds is the distinguished outcome for an input URL that yields no
// valid feeds. It is the expected result for most of the web and is not
// an infrastructure failure; callers check it with errors.Is.
var ErrNoFeeds = errors.New("no feeds found")

// Service locates candidate feed URLs for one category of input URL.
// Implementations are stateless across calls and safe to reuse for many
// sessions. A service never decides validity itself: only the shared
// Validator's successful parse makes a candidate a feed.
type Service interface {
	strategy.Strategy

	// CanHandle reports whether this service recognizes the input URL.
	CanHandle(rawURL string) bool

	// Discover returns the feeds this service located and validated for
	// the input URL. An empty slice means "nothing here", an error means
	// the service itself broke.
	Discover(ctx context.Context, rawURL string, validator *Validator) ([]domain.DiscoveredFeed, error)
}

// Registry walks discovery services in ascending priority order. The
// first matching service that returns feeds wins; services that error
// are logged and skipped. Each Discover call gets its own Session, so
// independent calls never share deduplication state.
type Registry struct {
	deps     interfaces.Dependencies
	opts     ValidatorOptions
	services *strategy.Registry[Service, []domain.DiscoveredFeed]
}

// NewRegistry creates a registry with no services. Register services at
// the composition root; there is no package-level default registry.
func NewRegistry(deps interfaces.Dependencies, opts ValidatorOptions) *Registry {
	return &Registry{
		deps:     deps,
		opts:     opts,
		services: strategy.NewRegistry[Service, []domain.DiscoveredFeed](deps.Logger),
	}
}

// Register adds a service. Equal priorities keep registration order.
func (r *Registry) Register(s Service) {
	r.services.Register(s)
}

// Discover finds valid feeds for one input URL. Outcomes:
//   - a non-empty feed list from the first matching service that found any;
//   - ErrNoFeeds when no matching service produced feeds and at least one
//     matching service completed normally (or none matched at all);
//   - a joined infrastructure error only when every matching service errored.
func (r *Registry) Discover(ctx context.Context, rawURL string) ([]domain.DiscoveredFeed, error) {
	ctx, span := r.deps.Telemetry.StartSpan(ctx, "discovery.discover", map[string]interface{}{
		"url": rawURL,
	})
	defer span.End()

	session := NewSession()
	validator := NewValidator(session, r.deps, r.opts)

	feeds, ok, report := r.services.Walk(ctx, rawURL,
		func(s Service) bool {
			return s.CanHandle(rawURL)
		},
		func(ctx context.Context, s Service) ([]domain.DiscoveredFeed, bool, error) {
			r.deps.Telemetry.AddBreadcrumb(ctx, "trying discovery service", map[string]interface{}{
				"service": s.Name(),
				"url":     rawURL,
			})
			found, err := s.Discover(ctx, rawURL, validator)
			if err != nil {
				r.deps.Telemetry.CaptureException(ctx, err, map[string]interface{}{
					"service": s.Name(),
					"url":     rawURL,
				})
				return nil, false, err
			}
			return found, len(found) > 0, nil
		})

	if ok {
		r.deps.Logger.Info("feeds discovered", map[string]interface{}{
			"url":   rawURL,
			"count": len(feeds),
		})
		return feeds, nil
	}

	if report.Matched > 0 && report.Errored == report.Matched {
		return nil, report.Err()
	}

	return nil, ErrNoFeeds
}
