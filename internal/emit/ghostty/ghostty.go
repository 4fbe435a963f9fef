// Package ghostty renders a token tree as a Ghostty terminal theme.
package ghostty

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/myrt-theme/myrt/internal/tokens"
)

//go:embed templates/ghostty.tmpl
var templateFS embed.FS

var themeTemplate = template.Must(
	template.New("ghostty.tmpl").Option("missingkey=error").ParseFS(templateFS, "templates/ghostty.tmpl"),
)

// Theme holds the values written to a Ghostty theme file.
type Theme struct {
	Background          string
	Foreground          string
	Cursor              string
	SelectionBackground string
	SelectionForeground string
	Palette             [16]string
}

// FromTree selects the Ghostty settings from a token tree. The selection
// color is opaque, pre-composited onto the canvas.
func FromTree(tree *tokens.Tree) (Theme, error) {
	if tree == nil {
		return Theme{}, fmt.Errorf("token tree is required")
	}
	if err := tree.Style.Validate(); err != nil {
		return Theme{}, err
	}
	return Theme{
		Background:          tree.UI.BG.Canvas,
		Foreground:          tree.UI.FG.Default,
		Cursor:              tree.Component.Terminal.CursorFg,
		SelectionBackground: tree.Component.Terminal.SelectionBg,
		SelectionForeground: tree.UI.FG.Default,
		Palette:             tree.ANSI.Palette16(),
	}, nil
}

// Emit renders tree in Ghostty's key = value theme format.
func Emit(tree *tokens.Tree) ([]byte, error) {
	theme, err := FromTree(tree)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := themeTemplate.Execute(&out, theme); err != nil {
		return nil, fmt.Errorf("render ghostty %s theme: %w", tree.Style, err)
	}
	return out.Bytes(), nil
}
