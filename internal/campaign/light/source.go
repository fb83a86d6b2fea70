// Package light defines light sources and loads the built-in light source
// catalog grouped by category.
package light

import (
	"fmt"
	"strings"

	"github.com/louisbranch/tabletop/internal/campaign/shape"
)

// Type distinguishes lights that illuminate from auras that only mark an area.
type Type int

const (
	Normal Type = iota
	Aura
)

// String returns the lowercase type name.
func (t Type) String() string {
	switch t {
	case Normal:
		return "normal"
	case Aura:
		return "aura"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "normal":
		*t = Normal
	case "aura":
		*t = Aura
	default:
		return fmt.Errorf("unknown light type %q", string(text))
	}
	return nil
}

// Range is one band of a light: everything within Distance receives Lumens.
type Range struct {
	Distance float64 `yaml:"distance"`
	Lumens   int     `yaml:"lumens"`
	// Color is an optional #rrggbb tint.
	Color string `yaml:"color"`
}

// Emission is the rendering detail of a light source. The registry never
// interprets it.
type Emission struct {
	Type           Type
	Shape          shape.Kind
	Arc            int
	ScaleWithToken bool
	GMOnly         bool
	OwnerOnly      bool
	Ranges         []Range
}

// MaxDistance returns the farthest range distance.
func (e Emission) MaxDistance() float64 {
	var max float64
	for _, r := range e.Ranges {
		if r.Distance > max {
			max = r.Distance
		}
	}
	return max
}

// Spec is a light source as read from a resource, before it has an id.
type Spec struct {
	Name           string     `yaml:"name"`
	Type           Type       `yaml:"type"`
	Shape          shape.Kind `yaml:"shape"`
	Arc            int        `yaml:"arc"`
	ScaleWithToken bool       `yaml:"scale_with_token"`
	GMOnly         bool       `yaml:"gm_only"`
	OwnerOnly      bool       `yaml:"owner_only"`
	Ranges         []Range    `yaml:"ranges"`
}

// Source is an immutable light source definition.
type Source struct {
	id       string
	name     string
	category string
	emission Emission
}

// NewSource builds a source with the given id from spec.
func NewSource(id, category string, spec Spec) *Source {
	return &Source{
		id:       id,
		name:     spec.Name,
		category: category,
		emission: Emission{
			Type:           spec.Type,
			Shape:          spec.Shape,
			Arc:            spec.Arc,
			ScaleWithToken: spec.ScaleWithToken,
			GMOnly:         spec.GMOnly,
			OwnerOnly:      spec.OwnerOnly,
			Ranges:         append([]Range(nil), spec.Ranges...),
		},
	}
}

// ID returns the identifier assigned when the source was loaded.
func (s *Source) ID() string { return s.id }

// Name returns the display name.
func (s *Source) Name() string { return s.name }

// Category returns the category the source was loaded under.
func (s *Source) Category() string { return s.category }

// Emission returns a copy of the emission detail.
func (s *Source) Emission() Emission {
	e := s.emission
	e.Ranges = append([]Range(nil), s.emission.Ranges...)
	return e
}

// String implements fmt.Stringer.
func (s *Source) String() string {
	return fmt.Sprintf("%s/%s", s.category, s.name)
}
