package color

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrt-theme/myrt/internal/style"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#1b1f23", RGBA{0x1b, 0x1f, 0x23, 0xff}},
		{"#1B1F23", RGBA{0x1b, 0x1f, 0x23, 0xff}},
		{"#1b1f234d", RGBA{0x1b, 0x1f, 0x23, 0x4d}},
		{"#abc", RGBA{0xaa, 0xbb, 0xcc, 0xff}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "fff", "#ff", "#fffff", "#ggg", "#12345", "#1234567", "#123456789", "#+12345"} {
		_, err := Parse(in)
		var colorErr *InvalidColorError
		require.True(t, errors.As(err, &colorErr), "expected InvalidColorError for %q, got %v", in, err)
		assert.Equal(t, in, colorErr.Value)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffffff", MustParse("#FFF").Hex())
	assert.Equal(t, "#0366d62e", MustParse("#0366D62E").Hex())
	assert.Equal(t, "#0366d6", MustParse("#0366d62e").Opaque().Hex())
}

func TestVariantLightIsIdentity(t *testing.T) {
	for _, hex := range []string{"#fff", "#F9826C", "#0366d6", "#1b1f234d"} {
		got, err := Variant(hex, style.Light)
		require.NoError(t, err)
		assert.Equal(t, hex, got)
	}
}

func TestVariantTrimsPaddedInput(t *testing.T) {
	light, err := Variant(" #fff ", style.Light)
	require.NoError(t, err)
	assert.Equal(t, "#fff", light)

	dark, err := Variant(" #fff ", style.Dark)
	require.NoError(t, err)
	assert.Equal(t, "#000000", dark)
}

func TestVariantDark(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#FFF", "#000000"},
		{"#808080", "#7f7f7f"},
		{"#ff000080", "#ff000080"},
	}
	for _, tt := range tests {
		got, err := Variant(tt.in, style.Dark)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestVariantDarkTwiceRestoresLightness(t *testing.T) {
	for _, hex := range []string{"#f9826c", "#0366d6", "#28a745", "#6f42c1", "#959da5", "#ffd33d"} {
		once, err := Variant(hex, style.Dark)
		require.NoError(t, err)
		twice, err := Variant(once, style.Dark)
		require.NoError(t, err)

		want, err := Lightness(hex)
		require.NoError(t, err)
		got, err := Lightness(twice)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 2.0/255, "%s -> %s -> %s", hex, once, twice)
	}
}

func TestVariantChangesLightnessOnly(t *testing.T) {
	in := "#0366d6"
	out, err := Variant(in, style.Dark)
	require.NoError(t, err)

	hIn, sIn, lIn := toColorful(MustParse(in)).Hsl()
	hOut, sOut, lOut := toColorful(MustParse(out)).Hsl()
	assert.InDelta(t, hIn, hOut, 1.5)
	assert.InDelta(t, sIn, sOut, 0.02)
	assert.InDelta(t, 1-lIn, lOut, 1.0/255)
}

func TestVariantErrors(t *testing.T) {
	_, err := Variant("not-a-color", style.Dark)
	var colorErr *InvalidColorError
	require.ErrorAs(t, err, &colorErr)

	_, err = Variant("nope", style.Light)
	require.ErrorAs(t, err, &colorErr)

	_, err = Variant("#ffffff", style.Style("dim"))
	var styleErr *style.InvalidStyleError
	require.ErrorAs(t, err, &styleErr)
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		bg, fg string
		want   string
	}{
		{"opaque fg without alpha", "#000000", "#ffffff", "#ffffff"},
		{"opaque fg explicit alpha", "#123456", "#abcdefff", "#abcdef"},
		{"transparent fg", "#123456", "#abcdef00", "#123456"},
		{"half", "#000000", "#ffffff80", "#808080"},
		{"bg alpha ignored", "#ffffff00", "#000000", "#000000"},
		{"selection over white", "#fff", "#0366d62e", "#d2e3f8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.bg, tt.fg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlattenDeterministic(t *testing.T) {
	first, err := Flatten("#24292e", "#0366d63b")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := Flatten("#24292e", "#0366d63b")
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
	c := MustParse(first)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestFlattenErrors(t *testing.T) {
	var colorErr *InvalidColorError
	_, err := Flatten("bad", "#ffffff")
	require.ErrorAs(t, err, &colorErr)
	_, err = Flatten("#ffffff", "#zzzzzz")
	require.ErrorAs(t, err, &colorErr)
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		hex  string
		a    float64
		want string
	}{
		{"#0366d6", 0.18, "#0366d62e"},
		{"#0366d6", 1, "#0366d6"},
		{"#0366d6", 0, "#0366d600"},
		{"#000", 0.08, "#00000014"},
		{"#0366d6", 2, "#0366d6"},
		{"#e1e4e8", 0.5, "#e1e4e880"},
	}
	for _, tt := range tests {
		got, err := Alpha(tt.hex, tt.a)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s @ %v", tt.hex, tt.a)
	}
}

func TestAlphaRejectsNaN(t *testing.T) {
	_, err := Alpha("#0366d6", math.NaN())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")

	got, err := Alpha("#0366d6", math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, "#0366d6", got)
}
