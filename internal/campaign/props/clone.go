package props

import (
	"context"

	"github.com/louisbranch/tabletop/internal/campaign/overlay"
	"github.com/louisbranch/tabletop/internal/campaign/sight"
)

// Clone returns an independent copy of r. r is populated first so the copy
// never captures a collection before its defaults exist.
//
// Immutable values (schemas, sight types, light groups, lookup tables) are
// shared. Overlays carry rendering state and are deep-copied.
func (r *Registry) Clone(ctx context.Context) *Registry {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "props.Clone")
	defer span.End()

	r.Populate(ctx)

	c := NewEmpty(
		WithLightProvider(r.lightProvider),
		WithReporter(r.reporter),
		WithLogger(r.logger),
	)
	c.tokenTypes.Replace(r.tokenTypes.Snapshot())
	c.lights.Replace(r.lights.Snapshot())
	c.tables.Replace(r.tables.Snapshot())
	c.sheets.Replace(r.sheets.Snapshot())
	c.states.Replace(cloneStates(r.states.Snapshot()))
	c.bars.Replace(cloneBars(r.bars.Snapshot()))
	c.repos.Replace(r.repos.Values())

	var (
		sights       map[string]sight.Definition
		defaultSight string
	)
	r.sights.view(func(items map[string]sight.Definition) {
		sights = copyMap(items)
		defaultSight = r.defaultSight
	})
	c.sights.replaceWith(sights, func() { c.defaultSight = defaultSight })

	c.SetInitiative(r.Initiative())

	r.logger.DebugContext(ctx, "campaign properties cloned")
	return c
}

func cloneStates(in map[string]*overlay.Boolean) map[string]*overlay.Boolean {
	out := make(map[string]*overlay.Boolean, len(in))
	for k, v := range in {
		out[k] = v.Clone()
	}
	return out
}

func cloneBars(in map[string]*overlay.Bar) map[string]*overlay.Bar {
	out := make(map[string]*overlay.Bar, len(in))
	for k, v := range in {
		out[k] = v.Clone()
	}
	return out
}
