// Package shape names the area shapes used by vision and light definitions.
package shape

import (
	"fmt"
	"strings"
)

// Kind is an area shape understood by the grid geometry engine.
type Kind int

const (
	// Unset means no explicit shape; consumers treat it as Circle.
	Unset Kind = iota
	Circle
	Square
	Cone
	Grid
	Beam
)

var names = map[Kind]string{
	Unset:  "",
	Circle: "circle",
	Square: "square",
	Cone:   "cone",
	Grid:   "grid",
	Beam:   "beam",
}

// String returns the lowercase shape name; Unset is the empty string.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(k))
}

// OrCircle returns k, or Circle when k is Unset.
func (k Kind) OrCircle() Kind {
	if k == Unset {
		return Circle
	}
	return k
}

// Parse resolves a shape name case-insensitively. The empty string is Unset.
func Parse(s string) (Kind, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range names {
		if name == trimmed {
			return kind, nil
		}
	}
	return Unset, fmt.Errorf("unknown shape %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := names[k]; !ok {
		return nil, fmt.Errorf("unknown shape %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
