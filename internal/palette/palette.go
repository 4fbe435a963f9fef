// Package palette holds the hand-authored color ramps and resolves them per style.
package palette

import (
	"fmt"

	"github.com/myrt-theme/myrt/internal/color"
	"github.com/myrt-theme/myrt/internal/style"
)

// RampSize is the number of steps in every ramp.
const RampSize = 10

// Ramp is an ordered light-to-dark sequence of colors. Index 0 is the
// lightest step in the authored table.
type Ramp [RampSize]string

// Reversed returns a copy of r in the opposite order.
func (r Ramp) Reversed() Ramp {
	var out Ramp
	for i := range r {
		out[i] = r[RampSize-1-i]
	}
	return out
}

// Table is a full palette: the fixed hue ramps plus the two absolutes.
type Table struct {
	Black string `json:"black" yaml:"black"`
	White string `json:"white" yaml:"white"`

	Gray   Ramp `json:"gray" yaml:"gray"`
	Blue   Ramp `json:"blue" yaml:"blue"`
	Green  Ramp `json:"green" yaml:"green"`
	Yellow Ramp `json:"yellow" yaml:"yellow"`
	Orange Ramp `json:"orange" yaml:"orange"`
	Red    Ramp `json:"red" yaml:"red"`
	Purple Ramp `json:"purple" yaml:"purple"`
	Pink   Ramp `json:"pink" yaml:"pink"`
}

// RampNames lists the ramp names in display order.
var RampNames = []string{"gray", "blue", "green", "yellow", "orange", "red", "purple", "pink"}

// Ramp returns the named ramp.
func (t *Table) Ramp(name string) (Ramp, bool) {
	p := t.rampPtr(name)
	if p == nil {
		return Ramp{}, false
	}
	return *p, true
}

func (t *Table) rampPtr(name string) *Ramp {
	switch name {
	case "gray":
		return &t.Gray
	case "blue":
		return &t.Blue
	case "green":
		return &t.Green
	case "yellow":
		return &t.Yellow
	case "orange":
		return &t.Orange
	case "red":
		return &t.Red
	case "purple":
		return &t.Purple
	case "pink":
		return &t.Pink
	default:
		return nil
	}
}

// Validate checks every entry of the table parses as a color.
func (t Table) Validate() error {
	if !color.Valid(t.Black) {
		return fmt.Errorf("black: %w", &color.InvalidColorError{Value: t.Black})
	}
	if !color.Valid(t.White) {
		return fmt.Errorf("white: %w", &color.InvalidColorError{Value: t.White})
	}
	for _, name := range RampNames {
		ramp, _ := t.Ramp(name)
		for i, hex := range ramp {
			if _, err := color.Parse(hex); err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
		}
	}
	return nil
}

// Resolve derives the working table for s. Dark reverses every ramp and
// swaps black and white; light returns t unchanged. t is not mutated.
func Resolve(t Table, s style.Style) (Table, error) {
	if err := s.Validate(); err != nil {
		return Table{}, err
	}
	if s != style.Dark {
		return t, nil
	}

	resolved := t
	resolved.Black, resolved.White = t.White, t.Black
	for _, name := range RampNames {
		p := resolved.rampPtr(name)
		*p = p.Reversed()
	}
	return resolved, nil
}
