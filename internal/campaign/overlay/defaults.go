package overlay

import "image/color"

// DefaultStates returns fresh copies of the built-in token states.
func DefaultStates() map[string]*Boolean {
	states := []*Boolean{
		NewX("Dead", Red, 5),
		NewX("Disabled", Gray, 5),
		NewShaded("Hidden", Black),
		NewO("Prone", Blue, 5),
		NewO("Incapacitated", Red, 5),
		NewColorDot("Other", Red, CornerNone),
		NewDiamond("Other2", Red, 5),
		NewYield("Other3", Yellow, 5),
		NewTriangle("Other4", Magenta, 5),
	}
	out := make(map[string]*Boolean, len(states))
	for i, s := range states {
		s.Style.Order = i
		out[s.Name()] = s
	}
	return out
}

// DefaultBars returns fresh copies of the built-in bars.
func DefaultBars() map[string]*Bar {
	health := NewTwoToneBar("Health", color.RGBA{R: 0x20, G: 0xb4, B: 0x20, A: 0xff}, Black, 6)
	return map[string]*Bar{health.Name(): health}
}
