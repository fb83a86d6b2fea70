package overlay

import (
	"image/color"

	"github.com/louisbranch/tabletop/internal/campaign/asset"
)

// BarKind selects how a bar value is drawn.
type BarKind int

const (
	TwoTone BarKind = iota
	Drawn
	SingleImage
	TwoImage
	MultipleImage
)

var barKindNames = [...]string{
	TwoTone:       "two-tone",
	Drawn:         "drawn",
	SingleImage:   "single-image",
	TwoImage:      "two-image",
	MultipleImage: "multiple-image",
}

func (k BarKind) String() string {
	if k >= 0 && int(k) < len(barKindNames) {
		return barKindNames[k]
	}
	return "unknown"
}

// Side is the token edge a bar is drawn along.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Bar shows a value between 0 and 1 on a token.
type Bar struct {
	name string
	kind BarKind

	Style Style
	Side  Side
	// Thickness in pixels.
	Thickness int
	// Increments snaps the value to steps; 0 means continuous.
	Increments int
	Color      color.RGBA
	Background color.RGBA
	// Images holds the assets: one for single-image bars, top then bottom
	// for two-image bars, and one per step for multiple-image bars.
	Images []asset.ID
}

func newBar(kind BarKind, name string) *Bar {
	return &Bar{name: name, kind: kind, Style: defaultStyle()}
}

// NewTwoToneBar fills with c over a background.
func NewTwoToneBar(name string, c, background color.RGBA, thickness int) *Bar {
	b := newBar(TwoTone, name)
	b.Color = c
	b.Background = background
	b.Thickness = thickness
	return b
}

// NewDrawnBar fills with a solid color.
func NewDrawnBar(name string, c color.RGBA, thickness int) *Bar {
	b := newBar(Drawn, name)
	b.Color = c
	b.Thickness = thickness
	return b
}

// NewSingleImageBar clips one image to the value.
func NewSingleImageBar(name string, id asset.ID) *Bar {
	b := newBar(SingleImage, name)
	b.Images = []asset.ID{id}
	return b
}

// NewTwoImageBar draws top over bottom, clipped to the value.
func NewTwoImageBar(name string, top, bottom asset.ID) *Bar {
	b := newBar(TwoImage, name)
	b.Images = []asset.ID{top, bottom}
	return b
}

// NewMultipleImageBar picks one image per step.
func NewMultipleImageBar(name string, ids ...asset.ID) *Bar {
	b := newBar(MultipleImage, name)
	b.Images = append([]asset.ID(nil), ids...)
	b.Increments = len(ids)
	return b
}

// Name returns the bar name.
func (b *Bar) Name() string { return b.name }

// Kind returns the drawing variant.
func (b *Bar) Kind() BarKind { return b.kind }

// Clone returns an independent copy.
func (b *Bar) Clone() *Bar {
	if b == nil {
		return nil
	}
	c := *b
	c.Images = append([]asset.ID(nil), b.Images...)
	return &c
}

// AssetIDs returns every image asset the bar draws.
func (b *Bar) AssetIDs() []asset.ID {
	if b == nil {
		return nil
	}
	switch b.kind {
	case SingleImage:
		if len(b.Images) > 0 {
			return appendIDs(nil, b.Images[0])
		}
	case TwoImage, MultipleImage:
		return appendIDs(nil, b.Images...)
	}
	return nil
}
