package light

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/louisbranch/tabletop/internal/platform/errors"
	"github.com/louisbranch/tabletop/internal/platform/id"
)

var tracer = otel.Tracer("github.com/louisbranch/tabletop/internal/campaign/light")

// Load asks provider for the default specs and assigns each source a fresh id.
// Errors are coded: LIGHT_SOURCES_UNAVAILABLE unless the provider already
// returned a coded error.
func Load(ctx context.Context, provider Provider) (map[string]*Group, error) {
	ctx, span := tracer.Start(ctx, "light.Load")
	defer span.End()

	groups, err := load(ctx, provider)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	total := 0
	for _, g := range groups {
		total += g.Len()
	}
	span.SetAttributes(
		attribute.Int("light.categories", len(groups)),
		attribute.Int("light.sources", total),
	)
	return groups, nil
}

func load(ctx context.Context, provider Provider) (map[string]*Group, error) {
	if provider == nil {
		provider = EmbeddedProvider{}
	}
	specs, err := provider.DefaultLightSources(ctx)
	if err != nil {
		if _, coded := apperrors.As(err); coded {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.CodeLightSourcesUnavailable, "load light sources", err)
	}
	groups := make(map[string]*Group, len(specs))
	for category, list := range specs {
		sources := make([]*Source, 0, len(list))
		for _, spec := range list {
			sourceID, err := id.NewID()
			if err != nil {
				return nil, apperrors.Wrap(apperrors.CodeIDGenerationFailed, "assign light source id", err)
			}
			sources = append(sources, NewSource(sourceID, category, spec))
		}
		groups[category] = NewGroup(category, sources...)
	}
	return groups, nil
}

// Find looks a source id up across every group.
func Find(groups map[string]*Group, sourceID string) (*Source, bool) {
	for _, g := range groups {
		if s, ok := g.Get(sourceID); ok {
			return s, true
		}
	}
	return nil, false
}
