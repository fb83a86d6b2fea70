package props

import (
	"log/slog"

	"github.com/louisbranch/tabletop/internal/campaign/light"
	"github.com/louisbranch/tabletop/internal/campaign/prefs"
	"github.com/louisbranch/tabletop/internal/platform/alert"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLightProvider sets where default light sources come from. The built-in
// catalog is used when unset.
func WithLightProvider(p light.Provider) Option {
	return func(r *Registry) { r.lightProvider = p }
}

// WithPreferences sets the initial initiative flags.
func WithPreferences(p prefs.Store) Option {
	return func(r *Registry) { r.prefs = p }
}

// WithReporter sets the operator alert channel. Reports are delivered with
// no registry lock held, so the reporter may read the registry.
func WithReporter(rep alert.Reporter) Option {
	return func(r *Registry) { r.reporter = rep }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}
