package overlay

import (
	"image/color"

	"github.com/louisbranch/tabletop/internal/campaign/asset"
)

// BooleanKind selects how a boolean state is drawn.
type BooleanKind int

const (
	X BooleanKind = iota
	Shaded
	O
	ColorDot
	Diamond
	Yield
	Triangle
	Cross
	Image
	CornerImage
	FlowImage
	FlowColorDot
	FlowColorSquare
)

var booleanKindNames = [...]string{
	X:               "x",
	Shaded:          "shaded",
	O:               "o",
	ColorDot:        "color-dot",
	Diamond:         "diamond",
	Yield:           "yield",
	Triangle:        "triangle",
	Cross:           "cross",
	Image:           "image",
	CornerImage:     "corner-image",
	FlowImage:       "flow-image",
	FlowColorDot:    "flow-color-dot",
	FlowColorSquare: "flow-color-square",
}

func (k BooleanKind) String() string {
	if k >= 0 && int(k) < len(booleanKindNames) {
		return booleanKindNames[k]
	}
	return "unknown"
}

// HasImage reports whether the kind draws an image asset.
func (k BooleanKind) HasImage() bool {
	return k == Image || k == CornerImage || k == FlowImage
}

// Corner anchors corner-drawn overlays.
type Corner int

const (
	CornerNone Corner = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

// Boolean marks a token that is in a named state.
type Boolean struct {
	name string
	kind BooleanKind

	Style Style
	Color color.RGBA
	// Width is the stroke width for line-drawn kinds.
	Width  int
	Corner Corner
	// GridSize is the cell count per side for flow kinds.
	GridSize int
	ImageID  asset.ID
}

func newBoolean(kind BooleanKind, name string) *Boolean {
	return &Boolean{name: name, kind: kind, Style: defaultStyle()}
}

// NewX draws a cross through the token.
func NewX(name string, c color.RGBA, width int) *Boolean {
	return newStroked(X, name, c, width)
}

// NewShaded tints the whole token.
func NewShaded(name string, c color.RGBA) *Boolean {
	b := newBoolean(Shaded, name)
	b.Color = c
	return b
}

// NewO circles the token.
func NewO(name string, c color.RGBA, width int) *Boolean {
	return newStroked(O, name, c, width)
}

// NewColorDot draws a dot in a corner.
func NewColorDot(name string, c color.RGBA, corner Corner) *Boolean {
	b := newBoolean(ColorDot, name)
	b.Color = c
	b.Corner = corner
	return b
}

func NewDiamond(name string, c color.RGBA, width int) *Boolean {
	return newStroked(Diamond, name, c, width)
}

func NewYield(name string, c color.RGBA, width int) *Boolean {
	return newStroked(Yield, name, c, width)
}

func NewTriangle(name string, c color.RGBA, width int) *Boolean {
	return newStroked(Triangle, name, c, width)
}

func NewCross(name string, c color.RGBA, width int) *Boolean {
	return newStroked(Cross, name, c, width)
}

// NewImage draws an image asset over the token.
func NewImage(name string, id asset.ID) *Boolean {
	b := newBoolean(Image, name)
	b.ImageID = id
	return b
}

// NewCornerImage draws an image asset in one corner.
func NewCornerImage(name string, id asset.ID, corner Corner) *Boolean {
	b := newBoolean(CornerImage, name)
	b.ImageID = id
	b.Corner = corner
	return b
}

// NewFlowImage lays image assets out in a grid shared by other flow overlays.
func NewFlowImage(name string, gridSize int, id asset.ID) *Boolean {
	b := newBoolean(FlowImage, name)
	b.GridSize = gridSize
	b.ImageID = id
	return b
}

func NewFlowColorDot(name string, c color.RGBA, gridSize int) *Boolean {
	b := newBoolean(FlowColorDot, name)
	b.Color = c
	b.GridSize = gridSize
	return b
}

func NewFlowColorSquare(name string, c color.RGBA, gridSize int) *Boolean {
	b := newBoolean(FlowColorSquare, name)
	b.Color = c
	b.GridSize = gridSize
	return b
}

func newStroked(kind BooleanKind, name string, c color.RGBA, width int) *Boolean {
	b := newBoolean(kind, name)
	b.Color = c
	b.Width = width
	return b
}

// Name returns the state name.
func (b *Boolean) Name() string { return b.name }

// Kind returns the drawing variant.
func (b *Boolean) Kind() BooleanKind { return b.kind }

// Clone returns an independent copy.
func (b *Boolean) Clone() *Boolean {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// AssetIDs returns the image asset the overlay draws, if any.
func (b *Boolean) AssetIDs() []asset.ID {
	if b == nil || !b.kind.HasImage() {
		return nil
	}
	return appendIDs(nil, b.ImageID)
}
