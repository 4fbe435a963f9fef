// Package color parses hex colors and implements the derived-color math:
// lightness inversion, alpha compositing and opacity adjustment.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidColorError reports a malformed color string.
type InvalidColorError struct {
	Value  string
	Reason string
}

func (e *InvalidColorError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid color %q", e.Value)
	}
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

// RGBA is an 8-bit per channel color.
type RGBA struct {
	R, G, B, A uint8
}

// Parse reads #rgb, #rrggbb or #rrggbbaa, case-insensitively.
func Parse(value string) (RGBA, error) {
	s := strings.TrimSpace(value)
	if !strings.HasPrefix(s, "#") {
		return RGBA{}, &InvalidColorError{Value: value, Reason: "missing # prefix"}
	}
	digits := s[1:]

	switch len(digits) {
	case 3:
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded) + "ff"
	case 6:
		digits += "ff"
	case 8:
	default:
		return RGBA{}, &InvalidColorError{Value: value, Reason: fmt.Sprintf("want 3, 6 or 8 hex digits, got %d", len(digits))}
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGBA{}, &InvalidColorError{Value: value, Reason: "non-hex digit"}
	}

	return RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(value string) RGBA {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether value parses as a color.
func Valid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Hex formats c as lower-case #rrggbb, or #rrggbbaa when not fully opaque.
func (c RGBA) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Opaque returns c with alpha forced to ff.
func (c RGBA) Opaque() RGBA {
	c.A = 0xff
	return c
}

// Alpha returns the alpha channel in [0,1].
func (c RGBA) Alpha() float64 {
	return float64(c.A) / 255
}
