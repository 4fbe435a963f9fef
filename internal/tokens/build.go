package tokens

import (
	"fmt"

	"github.com/myrt-theme/myrt/internal/color"
	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
)

// activeBorder is the orange accent used for active tab and panel borders.
const activeBorder = "#f9826c"

// BuildDefault builds the tree from the built-in palette.
func BuildDefault(s style.Style, name string) (*Tree, error) {
	return Build(palette.Default(), s, name)
}

// Build resolves table for s and assembles the token tree. The first color
// error encountered aborts the build.
func Build(table palette.Table, s style.Style, name string) (*Tree, error) {
	scale, err := palette.Resolve(table, s)
	if err != nil {
		return nil, err
	}
	if err := scale.Validate(); err != nil {
		return nil, fmt.Errorf("build %s tokens: %w", s, err)
	}

	b := &builder{style: s}
	t := &Tree{Name: name, Style: s, Scale: scale}

	b.ui(t, scale)
	b.brand(t, scale)
	b.states(t, scale)
	b.syntax(t, scale)
	b.component(t, scale)
	b.ansi(t, scale)

	t.Background = t.UI.BG.Canvas
	t.Foreground = t.UI.FG.Default
	t.Accent = t.Brand.Accent.Default

	if b.err != nil {
		return nil, fmt.Errorf("build %s tokens: %w", s, b.err)
	}
	return t, nil
}

// builder carries the style and the first color error so the token table
// can stay a flat list of assignments.
type builder struct {
	style style.Style
	err   error
}

func (b *builder) pick(light, dark string) string {
	return style.Pair[string]{Light: light, Dark: dark}.Pick(b.style)
}

func (b *builder) variant(hex string) string {
	if b.err != nil {
		return ""
	}
	out, err := color.Variant(hex, b.style)
	if err != nil {
		b.err = err
		return ""
	}
	return out
}

func (b *builder) alpha(hex string, a float64) string {
	if b.err != nil {
		return ""
	}
	out, err := color.Alpha(hex, a)
	if err != nil {
		b.err = err
		return ""
	}
	return out
}

func (b *builder) flatten(bg, fg string) string {
	if b.err != nil {
		return ""
	}
	out, err := color.Flatten(bg, fg)
	if err != nil {
		b.err = err
		return ""
	}
	return out
}

func (b *builder) ui(t *Tree, s palette.Table) {
	t.UI.BG.Canvas = b.pick(s.White, s.Gray[0])
	t.UI.BG.Subtle = s.Gray[0]
	t.UI.BG.Elevated = b.pick(s.White, s.Gray[1])

	t.UI.FG.Default = b.pick(s.Gray[7], s.Gray[6])
	t.UI.FG.Muted = s.Gray[5]
	t.UI.FG.Subtle = s.Gray[4]
	t.UI.FG.Cursor = s.Blue[7]
	t.UI.FG.Workbench = b.pick(s.Gray[8], s.Gray[7])

	t.UI.Border.Default = b.pick(s.Gray[2], s.Gray[1])
	t.UI.Border.Subtle = s.Gray[2]
}

func (b *builder) brand(t *Tree, s palette.Table) {
	a := &t.Brand.Accent
	a.Default = b.pick(s.Blue[5], s.Blue[6])
	a.Emphasis = b.pick(s.Blue[6], s.Blue[7])
	a.Focus = b.pick(s.Blue[4], s.Blue[3])
	a.SubtleBg = s.Blue[1]
	a.On = b.pick(s.White, s.Black)
	a.ActiveBorder = activeBorder
}

func (b *builder) states(t *Tree, s palette.Table) {
	t.States.Success = State{FG: s.Green[6], BG: s.Green[1], Border: s.Green[3]}
	t.States.Info = State{FG: s.Blue[6], BG: s.Blue[1], Border: s.Blue[3]}
	t.States.Warning = State{FG: s.Orange[6], BG: s.Orange[1], Border: s.Orange[3]}
	t.States.Danger = State{FG: s.Red[6], BG: s.Red[1], Border: s.Red[3]}
}

func (b *builder) syntax(t *Tree, s palette.Table) {
	x := &t.Syntax
	x.Comment = b.pick(s.Gray[5], s.Gray[4])
	x.Keyword = b.pick(s.Red[5], s.Red[6])
	x.Function = b.pick(s.Purple[5], s.Purple[6])
	x.Attribute = b.pick(s.Purple[5], s.Purple[6])
	x.Decorator = b.pick(s.Purple[5], s.Purple[6])
	x.Tag = s.Green[6]
	x.Variable = s.Orange[6]
	x.Identifier = s.Blue[6]
	x.Constant = s.Blue[6]
	x.PropertyName = s.Blue[6]
	x.Support = s.Blue[6]
	x.String = b.pick(s.Blue[8], "#9ecbff")
	x.Punctuation = s.Gray[4]
	x.Regexp = s.Blue[8]
	x.Invalid = s.Red[7]
	x.Muted = s.Gray[6]
	x.Word = b.pick(s.Black, s.White)
}

func (b *builder) component(t *Tree, s palette.Table) {
	c := &t.Component
	workbench := t.UI.FG.Workbench
	darkPanel := "#1f2428"
	edge := b.pick(s.Gray[2], s.White)

	c.TitleBar.ActiveBg = b.pick(s.White, s.Gray[0])
	c.TitleBar.ActiveFg = workbench
	c.TitleBar.InactiveBg = b.pick(s.Gray[1], darkPanel)
	c.TitleBar.InactiveFg = s.Gray[5]
	c.TitleBar.Border = b.pick(s.Gray[4], s.White)

	c.ActivityBar.Bg = b.pick(s.White, s.Gray[0])
	c.ActivityBar.Fg = workbench
	c.ActivityBar.InactiveFg = s.Gray[4]
	c.ActivityBar.BadgeBg = s.Blue[4]
	c.ActivityBar.BadgeFg = b.pick(s.White, s.Black)
	c.ActivityBar.Border = edge
	c.ActivityBar.ActiveBorder = activeBorder

	c.SideBar.Bg = b.pick(s.Gray[1], darkPanel)
	c.SideBar.Fg = s.Gray[6]
	c.SideBar.SectionBg = b.pick(s.Gray[1], darkPanel)
	c.SideBar.SectionFg = workbench
	c.SideBar.Border = edge
	c.SideBar.StickyScroll.Border = s.Gray[2]
	c.SideBar.StickyScroll.Shadow = b.pick(s.Gray[1], darkPanel)

	c.StatusBar.Bg = b.pick(s.White, s.Gray[0])
	c.StatusBar.Fg = s.Gray[6]
	c.StatusBar.Border = edge
	c.StatusBar.ProminentBg = b.pick("#e8eaed", "#282e34")
	c.StatusBar.DebuggingBg = b.variant(activeBorder)
	c.StatusBar.DebuggingFg = b.pick(s.White, s.Black)

	c.Breadcrumb.Fg = s.Gray[5]
	c.Breadcrumb.ActiveSelectionFg = s.Gray[6]
	c.Breadcrumb.PickerBg = b.pick(s.Gray[0], "#2b3036")

	c.QuickInput.Bg = s.Gray[0]
	c.QuickInput.Fg = workbench

	c.PickerGroup.Border = edge
	c.PickerGroup.Fg = workbench

	c.EditorGroup.TabsBg = b.pick(s.Gray[1], darkPanel)
	c.EditorGroup.TabsBorder = edge
	c.EditorGroup.Border = edge

	c.Button.Primary = Button{
		Bg:      b.pick("#159739", s.Green[2]),
		Fg:      b.pick(s.White, s.Green[8]),
		HoverBg: b.pick("#138934", s.Green[3]),
	}
	c.Button.Secondary = Button{
		Bg:      s.Gray[2],
		Fg:      s.Black,
		HoverBg: s.Gray[3],
	}

	c.Dropdown.Bg = b.pick(s.Gray[0], s.Gray[1])
	c.Dropdown.Border = edge
	c.Dropdown.Fg = workbench
	c.Dropdown.ListBg = b.pick(s.White, s.Gray[0])

	c.Checkbox.Bg = b.pick(s.Gray[0], s.Gray[2])
	c.Checkbox.Border = b.pick(s.Gray[3], s.White)

	c.Input.Bg = b.pick(s.Gray[0], s.Gray[1])
	c.Input.Border = edge
	c.Input.Fg = workbench
	c.Input.PlaceholderFg = b.pick(s.Gray[4], s.Gray[5])

	c.List.HoverBg = b.pick("#ebf0f4", "#282e34")
	c.List.InactiveSelectionBg = b.pick("#e8eaed", "#282e34")
	c.List.ActiveSelBg = b.pick("#e2e5e9", "#39414a")
	c.List.InactiveFocusBg = b.pick(s.Blue[1], "#1d2d3e")
	c.List.FocusBg = b.pick("#cce5ff", s.Blue[2])

	b.editor(&c.Editor, s)

	c.DiffEditor.InsertedBg = b.pick("#34d05822", "#28a74530")
	c.DiffEditor.RemovedBg = b.pick("#d73a4922", "#d73a4930")

	c.ScrollbarSlider.Bg = b.pick("#959da533", "#6a737d33")
	c.ScrollbarSlider.HoverBg = b.pick("#959da544", "#6a737d44")
	c.ScrollbarSlider.ActiveBg = b.pick("#959da588", "#6a737d88")

	c.Terminal.Fg = s.Gray[6]
	c.Terminal.CursorBg = s.Gray[3]
	c.Terminal.CursorFg = s.Blue[6]
	c.Terminal.TabActiveBorder = activeBorder
	// Terminals cannot draw a translucent selection; present it flattened
	// over the canvas.
	c.Terminal.SelectionBg = b.flatten(t.UI.BG.Canvas, c.Editor.SelectionBg)

	c.Debug.ToolBarBg = b.pick(s.White, "#2b3036")
	c.Debug.StackFrameBg = b.pick("#ffd33d33", "#c6902625")
	c.Debug.FocusedStackFrameBg = b.pick("#28a74525", "#2b6a3033")

	c.Panel.Bg = b.pick(s.Gray[1], darkPanel)
	c.Panel.Border = edge
	c.Panel.TitleActiveBorder = activeBorder

	c.PeekView.MatchHighlightBg = "#ffd33d33"
	c.PeekView.EditorBg = "#1f242888"
	c.PeekView.ResultBg = darkPanel

	c.Welcome.ButtonBg = s.Gray[1]
	c.Welcome.ButtonHoverBg = s.Gray[2]

	c.Popover.Shadow = b.alpha("#000", b.pickAlpha(0.08, 0.15))
}

func (b *builder) pickAlpha(light, dark float64) float64 {
	return style.Pair[float64]{Light: light, Dark: dark}.Pick(b.style)
}

func (b *builder) editor(e *Editor, s palette.Table) {
	e.Fg = b.pick(s.Gray[9], s.Gray[7])
	e.Bg = b.pick(s.White, s.Gray[0])
	e.LineHighlightBg = b.pick(s.Gray[1], "#2b3036")
	e.LineNumberFg = b.pick("#1b1f234d", s.Gray[2])
	e.IndentGuideBg = b.pick(b.alpha(s.Gray[2], 0.5), s.Gray[1])
	e.IndentGuideActiveBg = b.pick("#d7dbe0", s.Gray[2])
	e.InactiveSelectionBg = b.alpha(s.Blue[5], b.pickAlpha(0.09, 0.15))
	e.SelectionBg = b.alpha(s.Blue[5], b.pickAlpha(0.18, 0.23))
	e.SelectionHlBg = b.pick("#34d05840", "#17e5e633")
	e.SelectionHlBorder = b.pick("#34d05800", "#17e5e600")
	e.FoldBg = b.pick("#d1d5da11", "#58606915")
	e.FindMatchBg = b.pick(s.Yellow[4], "#ffd33d44")
	e.FindMatchHighlightBg = b.pick("#ffdf5d66", "#ffd33d22")
	e.LinkedEditingBg = b.pick("#0366d611", b.alpha(s.Blue[6], 0.32))
	e.WordHighlightBg = b.pick("#34d05800", "#17e5e600")
	e.WordHighlightStrongBg = b.pick("#34d05800", "#17e5e600")
	e.WordHighlightBorder = b.pick("#24943e99", "#17e5e699")
	e.WordHighlightStrongBorder = b.pick("#24943e50", "#17e5e666")
	e.BracketMatchBg = b.pick("#34d05840", "#17e5e650")
	e.BracketMatchBorder = b.pick("#34d05800", "#17e5e600")
	e.GhostTextBg = b.pick(b.alpha(s.Blue[5], 0.12), b.alpha(s.Green[5], 0.1))
}

func (b *builder) ansi(t *Tree, s palette.Table) {
	a := &t.ANSI
	a.Black = b.pick(s.Gray[9], s.Gray[3])
	a.BrightBlack = b.pick(s.Gray[4], s.Gray[5])
	a.Red = s.Red[6]
	a.BrightRed = s.Red[7]
	a.Green = s.Green[5]
	a.BrightGreen = s.Green[6]
	a.Yellow = b.pick(s.Yellow[7], s.Yellow[6])
	a.BrightYellow = b.pick(s.Yellow[8], s.Yellow[6])
	a.Blue = s.Blue[6]
	a.BrightBlue = s.Blue[7]
	a.Magenta = s.Purple[6]
	a.BrightMagenta = s.Purple[7]
	a.White = b.pick(s.Gray[5], s.Gray[6])
	a.BrightWhite = b.pick(s.Gray[3], s.Gray[9])
	a.Cyan = b.pick("#1b7c83", "#39c5cf")
	a.BrightCyan = b.pick("#3192aa", "#56d4dd")
}
