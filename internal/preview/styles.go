package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/myrt-theme/myrt/internal/color"
	"github.com/myrt-theme/myrt/internal/tokens"
)

// Styles contains lipgloss styles derived from a token tree.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	canvas   string
	renderer *lipgloss.Renderer
}

// BuildStyles converts tree tokens into lipgloss styles for r.
func BuildStyles(r *lipgloss.Renderer, tree *tokens.Tree) Styles {
	s := Styles{canvas: tree.UI.BG.Canvas, renderer: r}
	c := s.color

	s.Title = r.NewStyle().Foreground(c(tree.UI.FG.Default)).Background(c(tree.UI.BG.Canvas)).Bold(true)
	s.Heading = r.NewStyle().Foreground(c(tree.Accent)).Bold(true)
	s.Text = r.NewStyle().Foreground(c(tree.UI.FG.Default)).Background(c(tree.UI.BG.Canvas))
	s.Muted = r.NewStyle().Foreground(c(tree.UI.FG.Muted))
	s.Panel = r.NewStyle().
		Background(c(tree.UI.BG.Canvas)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(tree.UI.Border.Default)).
		Padding(0, 1)
	s.Success = badge(r, c, tree.States.Success)
	s.Info = badge(r, c, tree.States.Info)
	s.Warning = badge(r, c, tree.States.Warning)
	s.Danger = badge(r, c, tree.States.Danger)
	return s
}

func badge(r *lipgloss.Renderer, c func(string) lipgloss.Color, st tokens.State) lipgloss.Style {
	return r.NewStyle().Foreground(c(st.FG)).Background(c(st.BG)).Padding(0, 1)
}

// Fg styles text in value over the canvas.
func (s Styles) Fg(value string) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(s.color(value)).Background(s.color(s.canvas))
}

// Swatch is a solid block of value.
func (s Styles) Swatch(value string) lipgloss.Style {
	return s.renderer.NewStyle().Background(s.color(value))
}

// color converts a token value to a terminal color. Translucent values are
// composited onto the canvas.
func (s Styles) color(value string) lipgloss.Color {
	flat, err := color.Flatten(s.canvas, value)
	if err != nil {
		return lipgloss.Color("")
	}
	return lipgloss.Color(flat)
}
