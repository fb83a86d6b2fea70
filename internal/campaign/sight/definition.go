// Package sight defines token vision profiles and the built-in sight catalog.
package sight

import (
	"fmt"

	"github.com/louisbranch/tabletop/internal/campaign/light"
	"github.com/louisbranch/tabletop/internal/campaign/shape"
)

// Spec holds the inputs for a Definition.
type Spec struct {
	Name       string
	Distance   float64
	Multiplier float64
	// PersonalLight is shared with the light catalog, not copied.
	PersonalLight  *light.Source
	Shape          shape.Kind
	Arc            int
	Offset         int
	ScaleWithToken bool
}

// Definition is an immutable vision profile.
type Definition struct {
	name           string
	distance       float64
	multiplier     float64
	personalLight  *light.Source
	shape          shape.Kind
	arc            int
	offset         int
	scaleWithToken bool
}

// NewDefinition builds a definition from spec.
func NewDefinition(spec Spec) Definition {
	return Definition{
		name:           spec.Name,
		distance:       spec.Distance,
		multiplier:     spec.Multiplier,
		personalLight:  spec.PersonalLight,
		shape:          spec.Shape,
		arc:            spec.Arc,
		offset:         spec.Offset,
		scaleWithToken: spec.ScaleWithToken,
	}
}

// Name returns the sight type name.
func (d Definition) Name() string { return d.name }

// Distance returns the vision range in map units.
func (d Definition) Distance() float64 { return d.distance }

// Multiplier scales the range of lights the token sees by.
func (d Definition) Multiplier() float64 { return d.multiplier }

// Arc returns the cone angle in degrees for cone shapes.
func (d Definition) Arc() int { return d.arc }

// Offset returns the facing offset in degrees.
func (d Definition) Offset() int { return d.offset }

// ScaleWithToken reports whether the area grows with the token footprint.
func (d Definition) ScaleWithToken() bool { return d.scaleWithToken }

// HasPersonalLight reports whether the sight carries a light.
func (d Definition) HasPersonalLight() bool { return d.personalLight != nil }

// PersonalLight returns the light the sight carries with it, or nil.
func (d Definition) PersonalLight() *light.Source { return d.personalLight }

// Shape returns the vision shape. An unset shape is a circle.
func (d Definition) Shape() shape.Kind { return d.shape.OrCircle() }

// Spec returns the inputs the definition was built from.
func (d Definition) Spec() Spec {
	return Spec{
		Name:           d.name,
		Distance:       d.distance,
		Multiplier:     d.multiplier,
		PersonalLight:  d.personalLight,
		Shape:          d.shape,
		Arc:            d.arc,
		Offset:         d.offset,
		ScaleWithToken: d.scaleWithToken,
	}
}

// VisionArea asks the zone's grid for the area token can see with this
// definition. It holds no state of its own.
func (d Definition) VisionArea(token Token, zone Zone) Area {
	if zone == nil {
		panic("sight: nil zone")
	}
	grid := zone.Grid()
	if grid == nil {
		panic("sight: zone has no grid")
	}
	return grid.ShapedArea(d.Shape(), token, d.distance, d.arc, d.offset, d.scaleWithToken)
}

// String implements fmt.Stringer.
func (d Definition) String() string {
	return fmt.Sprintf("%s(%s %.1f x%.1f)", d.name, d.Shape(), d.distance, d.multiplier)
}
