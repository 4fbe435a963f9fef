// Package preview draws a token tree as terminal swatches.
package preview

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/tokens"
)

// Options control preview rendering.
type Options struct {
	// Plain writes hex values without escape codes.
	Plain bool
}

type sample struct {
	label string
	value func(*tokens.Tree) string
}

var syntaxSamples = []sample{
	{"keyword", func(t *tokens.Tree) string { return t.Syntax.Keyword }},
	{"function", func(t *tokens.Tree) string { return t.Syntax.Function }},
	{"string", func(t *tokens.Tree) string { return t.Syntax.String }},
	{"constant", func(t *tokens.Tree) string { return t.Syntax.Constant }},
	{"variable", func(t *tokens.Tree) string { return t.Syntax.Variable }},
	{"tag", func(t *tokens.Tree) string { return t.Syntax.Tag }},
	{"comment", func(t *tokens.Tree) string { return t.Syntax.Comment }},
	{"invalid", func(t *tokens.Tree) string { return t.Syntax.Invalid }},
}

// Render writes the preview of tree to w.
func Render(w io.Writer, tree *tokens.Tree, opts Options) error {
	if tree == nil {
		return fmt.Errorf("token tree is required")
	}
	if opts.Plain {
		return renderPlain(w, tree)
	}

	st := BuildStyles(lipgloss.NewRenderer(w), tree)
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf(" %s (%s) ", tree.Name, tree.Style)))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render("scale"))
	b.WriteString("\n")
	for _, name := range palette.RampNames {
		ramp, _ := tree.Scale.Ramp(name)
		b.WriteString(st.Muted.Render(fmt.Sprintf("%-7s", name)))
		for _, value := range ramp {
			b.WriteString(st.Swatch(value).Render("   "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(st.Heading.Render("syntax"))
	b.WriteString("\n")
	var code strings.Builder
	for i, s := range syntaxSamples {
		if i > 0 {
			code.WriteString(st.Text.Render(" "))
		}
		code.WriteString(st.Fg(s.value(tree)).Render(s.label))
	}
	b.WriteString(st.Panel.Render(code.String()))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render("ansi"))
	b.WriteString("\n")
	ansi := tree.ANSI.Palette16()
	for i, value := range ansi {
		if i == 8 {
			b.WriteString("\n")
		}
		b.WriteString(st.Swatch(value).Render(fmt.Sprintf("%3d ", i)))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		st.Success.Render("success"), " ",
		st.Info.Render("info"), " ",
		st.Warning.Render("warning"), " ",
		st.Danger.Render("danger"),
	))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderPlain(w io.Writer, tree *tokens.Tree) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n\n", tree.Name, tree.Style)

	for _, name := range palette.RampNames {
		ramp, _ := tree.Scale.Ramp(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(ramp[:], " "))
	}
	fmt.Fprintln(tw)

	for _, s := range syntaxSamples {
		fmt.Fprintf(tw, "syntax.%s\t%s\n", s.label, s.value(tree))
	}
	fmt.Fprintln(tw)

	for i, value := range tree.ANSI.Palette16() {
		fmt.Fprintf(tw, "ansi %d\t%s\n", i, value)
	}
	return tw.Flush()
}
