package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/myrt-theme/myrt/internal/style"
)

// Variant mirrors hex for the given style. Light returns hex as written,
// minus surrounding whitespace.
// Dark inverts HSL lightness (l -> 1-l) keeping hue and saturation; the
// result is clamped to sRGB, rounded to nearest per channel and formatted
// lower-case. A non-opaque alpha channel is carried over.
func Variant(hex string, s style.Style) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	if s != style.Dark {
		return strings.TrimSpace(hex), nil
	}

	h, sat, l := toColorful(c).Hsl()
	inverted := fromColorful(colorful.Hsl(h, sat, 1-l))
	inverted.A = c.A
	return inverted.Hex(), nil
}

// Flatten composites foreground over background and returns one opaque
// color. Background alpha is ignored; a foreground without alpha occludes
// the background entirely.
func Flatten(background, foreground string) (string, error) {
	bg, err := Parse(background)
	if err != nil {
		return "", err
	}
	fg, err := Parse(foreground)
	if err != nil {
		return "", err
	}

	a := fg.Alpha()
	blend := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*a + float64(b)*(1-a)))
	}

	return RGBA{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: 0xff,
	}.Hex(), nil
}

// Alpha returns hex with opacity a, clamped to [0,1].
func Alpha(hex string, a float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	if math.IsNaN(a) {
		return "", fmt.Errorf("alpha for %s: opacity is not a number", c.Hex())
	}
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(math.Round(a * 255))
	return c.Hex(), nil
}

// Lightness returns the HSL lightness of hex in [0,1].
func Lightness(hex string) (float64, error) {
	c, err := Parse(hex)
	if err != nil {
		return 0, err
	}
	_, _, l := toColorful(c).Hsl()
	return l, nil
}

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: 0xff}
}
