package sight

import "github.com/louisbranch/tabletop/internal/campaign/shape"

// Point is a position in zone coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Min is inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Area is a 2-D region produced by a grid.
type Area interface {
	Bounds() Rect
	Contains(p Point) bool
	Empty() bool
}

// Token is whatever the grid needs to anchor a shape, usually a map token.
// This package never inspects it.
type Token any

// GridGeometry turns vision parameters into an area on a specific grid.
type GridGeometry interface {
	ShapedArea(kind shape.Kind, token Token, distance float64, arc, offset int, scaleWithToken bool) Area
}

// GridGeometryFunc adapts a function to GridGeometry.
type GridGeometryFunc func(kind shape.Kind, token Token, distance float64, arc, offset int, scaleWithToken bool) Area

// ShapedArea calls f.
func (f GridGeometryFunc) ShapedArea(kind shape.Kind, token Token, distance float64, arc, offset int, scaleWithToken bool) Area {
	return f(kind, token, distance, arc, offset, scaleWithToken)
}

// Zone is a map with a grid.
type Zone interface {
	Grid() GridGeometry
}
