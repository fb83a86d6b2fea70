package overlay

import (
	"testing"

	"github.com/louisbranch/tabletop/internal/campaign/asset"
)

func TestDefaultStates(t *testing.T) {
	states := DefaultStates()

	cases := map[string]struct {
		kind  BooleanKind
		color string
		width int
	}{
		"Dead":          {X, "#ff0000", 5},
		"Disabled":      {X, "#808080", 5},
		"Hidden":        {Shaded, "#000000", 0},
		"Prone":         {O, "#0000ff", 5},
		"Incapacitated": {O, "#ff0000", 5},
		"Other":         {ColorDot, "#ff0000", 0},
		"Other2":        {Diamond, "#ff0000", 5},
		"Other3":        {Yield, "#ffff00", 5},
		"Other4":        {Triangle, "#ff00ff", 5},
	}
	if len(states) != len(cases) {
		t.Fatalf("states = %d, want %d", len(states), len(cases))
	}
	for name, want := range cases {
		got, ok := states[name]
		if !ok {
			t.Fatalf("missing state %q", name)
		}
		if got.Name() != name || got.Kind() != want.kind || Hex(got.Color) != want.color || got.Width != want.width {
			t.Fatalf("%s = %s %s w%d, want %s %s w%d", name, got.Kind(), Hex(got.Color), got.Width, want.kind, want.color, want.width)
		}
		if got.Style.Visibility != Everyone || got.Style.Opacity != 100 {
			t.Fatalf("%s style = %+v", name, got.Style)
		}
	}
}

func TestDefaultStatesAreFresh(t *testing.T) {
	a := DefaultStates()
	b := DefaultStates()
	a["Dead"].Width = 99

	if b["Dead"].Width != 5 {
		t.Fatalf("default states share instances")
	}
}

func TestDefaultBars(t *testing.T) {
	bars := DefaultBars()
	health, ok := bars["Health"]
	if !ok || len(bars) != 1 {
		t.Fatalf("bars = %v, want only Health", bars)
	}
	if health.Kind() != TwoTone || Hex(health.Color) != "#20b420" || Hex(health.Background) != "#000000" || health.Thickness != 6 {
		t.Fatalf("health = %+v", health)
	}
	if len(health.AssetIDs()) != 0 {
		t.Fatalf("two-tone bar reported assets: %v", health.AssetIDs())
	}
}

func TestBooleanCloneIsIndependent(t *testing.T) {
	orig := NewX("Dead", Red, 5)
	clone := orig.Clone()
	clone.Width = 1
	clone.Style.Visibility.Others = false

	if orig.Width != 5 || !orig.Style.Visibility.Others {
		t.Fatalf("original mutated: %+v", orig)
	}
	if clone.Name() != "Dead" || clone.Kind() != X {
		t.Fatalf("clone identity = %s/%s", clone.Name(), clone.Kind())
	}
	var nilOverlay *Boolean
	if nilOverlay.Clone() != nil {
		t.Fatal("nil clone should be nil")
	}
}

func TestBarCloneCopiesImages(t *testing.T) {
	orig := NewMultipleImageBar("Mana", "a", "b", "c")
	clone := orig.Clone()
	clone.Images[0] = "z"

	if orig.Images[0] != "a" {
		t.Fatalf("original images mutated: %v", orig.Images)
	}
	if orig.Increments != 3 {
		t.Fatalf("increments = %d, want 3", orig.Increments)
	}
}

func TestBooleanAssetIDs(t *testing.T) {
	cases := []struct {
		overlay *Boolean
		want    []asset.ID
	}{
		{NewImage("Blessed", "img-1"), []asset.ID{"img-1"}},
		{NewCornerImage("Marked", "img-2", TopRight), []asset.ID{"img-2"}},
		{NewFlowImage("Flow", 3, "img-3"), []asset.ID{"img-3"}},
		{NewImage("Unset", ""), nil},
		{NewFlowColorDot("Dot", Red, 3), nil},
		{NewFlowColorSquare("Square", Red, 3), nil},
		{NewCross("Cross", Red, 2), nil},
	}
	for _, tc := range cases {
		got := tc.overlay.AssetIDs()
		if !equalIDs(got, tc.want) {
			t.Fatalf("%s assets = %v, want %v", tc.overlay.Name(), got, tc.want)
		}
	}
}

func TestBarAssetIDs(t *testing.T) {
	cases := []struct {
		overlay *Bar
		want    []asset.ID
	}{
		{NewSingleImageBar("Single", "s"), []asset.ID{"s"}},
		{NewTwoImageBar("Two", "top", "bottom"), []asset.ID{"top", "bottom"}},
		{NewMultipleImageBar("Many", "a", "", "c"), []asset.ID{"a", "c"}},
		{NewDrawnBar("Drawn", Blue, 4), nil},
	}
	for _, tc := range cases {
		got := tc.overlay.AssetIDs()
		if !equalIDs(got, tc.want) {
			t.Fatalf("%s assets = %v, want %v", tc.overlay.Name(), got, tc.want)
		}
	}
}

func TestOverlayInterface(t *testing.T) {
	overlays := []Overlay{NewImage("a", "1"), NewTwoImageBar("b", "2", "3")}
	total := 0
	for _, o := range overlays {
		total += len(o.AssetIDs())
	}
	if total != 3 {
		t.Fatalf("total assets = %d, want 3", total)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#20b420")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if Hex(c) != "#20b420" || c.A != 0xff {
		t.Fatalf("color = %v", c)
	}
	for _, bad := range []string{"", "20b420", "#20b42", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) expected error", bad)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if FlowColorSquare.String() != "flow-color-square" || BooleanKind(99).String() != "unknown" {
		t.Fatal("boolean kind names")
	}
	if MultipleImage.String() != "multiple-image" || BarKind(-1).String() != "unknown" {
		t.Fatal("bar kind names")
	}
}

func equalIDs(a, b []asset.ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
