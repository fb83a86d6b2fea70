// Package overlay defines the markers drawn on tokens: boolean state
// overlays and value bars.
//
// Overlays carry mutable rendering state. Anything that hands an overlay to
// another owner must Clone it first.
package overlay

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/louisbranch/tabletop/internal/campaign/asset"
)

// Overlay is the behavior shared by both families.
type Overlay interface {
	Name() string
	AssetIDs() []asset.ID
}

// Visibility controls who sees an overlay.
type Visibility struct {
	GM     bool
	Owner  bool
	Others bool
}

// Everyone is the default visibility.
var Everyone = Visibility{GM: true, Owner: true, Others: true}

// Style is the rendering state common to both families.
type Style struct {
	Visibility Visibility
	// Opacity in percent, 0 to 100.
	Opacity   int
	Order     int
	Mouseover bool
}

func defaultStyle() Style {
	return Style{Visibility: Everyone, Opacity: 100}
}

// ParseColor reads a #rrggbb color.
func ParseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colors used by the built-in overlays.
var (
	Red     = color.RGBA{R: 0xff, A: 0xff}
	Gray    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Black   = color.RGBA{A: 0xff}
	Blue    = color.RGBA{B: 0xff, A: 0xff}
	Yellow  = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	Magenta = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
)

func appendIDs(dst []asset.ID, ids ...asset.ID) []asset.ID {
	for _, id := range ids {
		if !id.IsZero() {
			dst = append(dst, id)
		}
	}
	return dst
}
