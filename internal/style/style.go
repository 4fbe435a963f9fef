// Package style defines the light/dark rendering axis shared by every derived color.
package style

import (
	"fmt"
	"strings"
)

// Style selects the rendering mode of a theme.
type Style string

const (
	Light Style = "light"
	Dark  Style = "dark"
)

// All lists the supported styles in build order.
var All = []Style{Light, Dark}

// InvalidStyleError reports a style value outside {light, dark}.
type InvalidStyleError struct {
	Value string
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("invalid style %q (want %q or %q)", e.Value, Light, Dark)
}

// Parse converts user input into a Style. Matching is case-insensitive.
func Parse(value string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(value)))
	if err := s.Validate(); err != nil {
		return "", &InvalidStyleError{Value: value}
	}
	return s, nil
}

// Validate returns an error unless s is Light or Dark.
func (s Style) Validate() error {
	switch s {
	case Light, Dark:
		return nil
	default:
		return &InvalidStyleError{Value: string(s)}
	}
}

// IsDark reports whether s is the dark style.
func (s Style) IsDark() bool {
	return s == Dark
}

func (s Style) String() string {
	return string(s)
}

// Pair holds one value per style. Pick resolves it for a given style.
type Pair[T any] struct {
	Light T
	Dark  T
}

// Pick returns the arm for s. Any style other than Dark selects Light;
// callers validate the style before building.
func (p Pair[T]) Pick(s Style) T {
	if s == Dark {
		return p.Dark
	}
	return p.Light
}
