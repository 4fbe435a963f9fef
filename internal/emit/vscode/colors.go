package vscode

import (
	"github.com/myrt-theme/myrt/internal/style"
	"github.com/myrt-theme/myrt/internal/tokens"
)

func workbenchColors(t *tokens.Tree) map[string]string {
	st := t.Style
	s := t.Scale
	c := &t.Component
	pick := func(light, dark string) string {
		return style.Pair[string]{Light: light, Dark: dark}.Pick(st)
	}
	workbench := t.UI.FG.Workbench
	editorFg := c.Editor.Fg

	out := colorSet{}

	out.set("focusBorder", t.Brand.Accent.Focus)
	out.set("foreground", t.UI.FG.Default)
	out.set("descriptionForeground", t.UI.FG.Muted)
	out.set("errorForeground", t.States.Danger.FG)

	out.set("textLink.foreground", t.Brand.Accent.Default)
	out.set("textLink.activeForeground", t.Brand.Accent.Emphasis)
	out.set("textBlockQuote.background", t.UI.BG.Subtle)
	out.set("textBlockQuote.border", s.Gray[2])
	out.set("textCodeBlock.background", s.Gray[1])
	out.set("textPreformat.foreground", s.Gray[6])
	out.set("textSeparator.foreground", s.Gray[3])

	out.set("button.background", c.Button.Primary.Bg)
	out.set("button.foreground", c.Button.Primary.Fg)
	out.set("button.hoverBackground", c.Button.Primary.HoverBg)
	out.set("button.secondaryBackground", c.Button.Secondary.Bg)
	out.set("button.secondaryForeground", c.Button.Secondary.Fg)
	out.set("button.secondaryHoverBackground", c.Button.Secondary.HoverBg)

	out.set("checkbox.background", c.Checkbox.Bg)
	out.set("checkbox.border", c.Checkbox.Border)

	out.set("dropdown.background", c.Dropdown.Bg)
	out.set("dropdown.border", c.Dropdown.Border)
	out.set("dropdown.foreground", c.Dropdown.Fg)
	out.set("dropdown.listBackground", c.Dropdown.ListBg)

	out.set("input.background", c.Input.Bg)
	out.set("input.border", c.Input.Border)
	out.set("input.foreground", c.Input.Fg)
	out.set("input.placeholderForeground", c.Input.PlaceholderFg)

	out.set("badge.foreground", pick(s.Blue[6], s.Blue[7]))
	out.set("badge.background", pick(s.Blue[1], s.Blue[2]))
	out.set("progressBar.background", s.Blue[4])

	out.set("titleBar.activeForeground", c.TitleBar.ActiveFg)
	out.set("titleBar.activeBackground", c.TitleBar.ActiveBg)
	out.set("titleBar.inactiveForeground", c.TitleBar.InactiveFg)
	out.set("titleBar.inactiveBackground", c.TitleBar.InactiveBg)
	out.set("titleBar.border", c.TitleBar.Border)

	out.set("activityBar.foreground", c.ActivityBar.Fg)
	out.set("activityBar.inactiveForeground", c.ActivityBar.InactiveFg)
	out.set("activityBar.background", c.ActivityBar.Bg)
	out.set("activityBarBadge.foreground", c.ActivityBar.BadgeFg)
	out.set("activityBarBadge.background", c.ActivityBar.BadgeBg)
	out.set("activityBar.activeBorder", c.ActivityBar.ActiveBorder)
	out.set("activityBar.border", c.ActivityBar.Border)

	out.set("sideBar.foreground", c.SideBar.Fg)
	out.set("sideBar.background", c.SideBar.Bg)
	out.set("sideBar.border", c.SideBar.Border)
	out.set("sideBarTitle.foreground", workbench)
	out.set("sideBarSectionHeader.foreground", c.SideBar.SectionFg)
	out.set("sideBarSectionHeader.background", c.SideBar.SectionBg)
	out.set("sideBarSectionHeader.border", c.SideBar.Border)
	out.set("sideBarStickyScroll.border", c.SideBar.StickyScroll.Border)
	out.set("sideBarStickyScroll.shadow", c.SideBar.StickyScroll.Shadow)

	out.set("list.hoverForeground", workbench)
	out.set("list.inactiveSelectionForeground", workbench)
	out.set("list.activeSelectionForeground", workbench)
	out.set("list.hoverBackground", c.List.HoverBg)
	out.set("list.inactiveSelectionBackground", c.List.InactiveSelectionBg)
	out.set("list.activeSelectionBackground", c.List.ActiveSelBg)
	out.set("list.inactiveFocusBackground", c.List.InactiveFocusBg)
	out.set("list.focusBackground", c.List.FocusBg)

	out.set("tree.indentGuidesStroke", pick(s.Gray[2], s.Gray[1]))

	out.set("notificationCenterHeader.foreground", t.UI.FG.Muted)
	out.set("notificationCenterHeader.background", pick(s.Gray[2], s.Gray[0]))
	out.set("notifications.foreground", workbench)
	out.set("notifications.background", pick(s.Gray[0], s.Gray[1]))
	out.set("notifications.border", t.UI.Border.Default)
	out.set("notificationsErrorIcon.foreground", s.Red[5])
	out.set("notificationsWarningIcon.foreground", s.Orange[6])
	out.set("notificationsInfoIcon.foreground", s.Blue[6])

	out.set("pickerGroup.border", c.PickerGroup.Border)
	out.set("pickerGroup.foreground", c.PickerGroup.Fg)
	out.set("quickInput.background", c.QuickInput.Bg)
	out.set("quickInput.foreground", c.QuickInput.Fg)

	out.set("statusBar.foreground", c.StatusBar.Fg)
	out.set("statusBar.background", c.StatusBar.Bg)
	out.set("statusBar.border", c.StatusBar.Border)
	out.set("statusBar.noFolderBackground", c.StatusBar.Bg)
	out.set("statusBar.debuggingBackground", c.StatusBar.DebuggingBg)
	out.set("statusBar.debuggingForeground", c.StatusBar.DebuggingFg)
	out.set("statusBarItem.prominentBackground", c.StatusBar.ProminentBg)
	out.set("statusBarItem.remoteForeground", s.Gray[6])
	out.set("statusBarItem.remoteBackground", pick(s.White, s.Gray[0]))

	out.set("editorGroupHeader.tabsBackground", c.EditorGroup.TabsBg)
	out.set("editorGroupHeader.tabsBorder", c.EditorGroup.TabsBorder)
	out.set("editorGroup.border", c.EditorGroup.Border)

	tabActive := pick(s.White, s.Gray[0])
	tabEdge := pick(s.Gray[2], s.White)
	out.set("tab.activeForeground", workbench)
	out.set("tab.inactiveForeground", s.Gray[5])
	out.set("tab.inactiveBackground", pick(s.Gray[1], "#1f2428"))
	out.set("tab.activeBackground", tabActive)
	out.set("tab.hoverBackground", tabActive)
	out.set("tab.unfocusedHoverBackground", tabActive)
	out.set("tab.border", tabEdge)
	out.set("tab.unfocusedActiveBorderTop", tabEdge)
	out.set("tab.activeBorder", tabActive)
	out.set("tab.unfocusedActiveBorder", tabActive)
	out.set("tab.activeBorderTop", t.Brand.Accent.ActiveBorder)

	out.set("breadcrumb.foreground", c.Breadcrumb.Fg)
	out.set("breadcrumb.focusForeground", workbench)
	out.set("breadcrumb.activeSelectionForeground", c.Breadcrumb.ActiveSelectionFg)
	out.set("breadcrumbPicker.background", c.Breadcrumb.PickerBg)

	e := &c.Editor
	out.set("editor.foreground", e.Fg)
	out.set("editor.background", e.Bg)
	out.set("editorWidget.background", pick(s.Gray[1], "#1f2428"))
	out.set("editor.foldBackground", e.FoldBg)
	out.set("editor.lineHighlightBackground", e.LineHighlightBg)
	out.set("editorLineNumber.foreground", e.LineNumberFg)
	out.set("editorLineNumber.activeForeground", editorFg)
	out.set("editorIndentGuide.background", e.IndentGuideBg)
	out.set("editorIndentGuide.activeBackground", e.IndentGuideActiveBg)
	out.set("editorWhitespace.foreground", pick(s.Gray[3], s.Gray[2]))
	out.set("editorCursor.foreground", t.UI.FG.Cursor)
	out.set("editorError.foreground", s.Red[6])
	out.set("editorWarning.foreground", s.Yellow[6])

	out.set("editor.findMatchBackground", e.FindMatchBg)
	out.set("editor.findMatchHighlightBackground", e.FindMatchHighlightBg)
	out.set("editor.linkedEditingBackground", e.LinkedEditingBg)
	out.set("editor.inactiveSelectionBackground", e.InactiveSelectionBg)
	out.set("editor.selectionBackground", e.SelectionBg)
	out.set("editor.selectionHighlightBackground", e.SelectionHlBg)
	out.set("editor.selectionHighlightBorder", e.SelectionHlBorder)
	out.set("editor.wordHighlightBackground", e.WordHighlightBg)
	out.set("editor.wordHighlightStrongBackground", e.WordHighlightStrongBg)
	out.set("editor.wordHighlightBorder", e.WordHighlightBorder)
	out.set("editor.wordHighlightStrongBorder", e.WordHighlightStrongBorder)
	out.set("editorBracketMatch.background", e.BracketMatchBg)
	out.set("editorBracketMatch.border", e.BracketMatchBorder)
	out.set("editorGhostText.background", e.GhostTextBg)

	out.set("editorGutter.modifiedBackground", pick(s.Blue[4], s.Blue[5]))
	out.set("editorGutter.addedBackground", pick(s.Green[5], s.Green[4]))
	out.set("editorGutter.deletedBackground", s.Red[5])

	out.set("diffEditor.insertedTextBackground", c.DiffEditor.InsertedBg)
	out.set("diffEditor.removedTextBackground", c.DiffEditor.RemovedBg)
	out.set("scrollbar.shadow", s.Gray[0])
	out.set("editorStickyScroll.background", e.Bg)
	out.set("editorStickyScroll.border", t.UI.Border.Default)
	out.set("editorStickyScroll.shadow", s.Gray[0])
	out.set("editorStickyScrollHover.background", s.Gray[1])
	out.set("scrollbarSlider.background", c.ScrollbarSlider.Bg)
	out.set("scrollbarSlider.hoverBackground", c.ScrollbarSlider.HoverBg)
	out.set("scrollbarSlider.activeBackground", c.ScrollbarSlider.ActiveBg)
	out.set("editorOverviewRuler.border", s.White)

	out.set("panel.background", c.Panel.Bg)
	out.set("panel.border", c.Panel.Border)
	out.set("panelTitle.activeBorder", c.Panel.TitleActiveBorder)
	out.set("panelTitle.activeForeground", workbench)
	out.set("panelTitle.inactiveForeground", s.Gray[5])
	out.set("panelInput.border", pick(s.Gray[2], s.Gray[1]))

	out.set("terminal.foreground", c.Terminal.Fg)
	out.set("terminal.selectionBackground", c.Editor.SelectionBg)
	out.set("terminal.tab.activeBorder", c.Terminal.TabActiveBorder)
	out.set("terminalCursor.background", c.Terminal.CursorBg)
	out.set("terminalCursor.foreground", c.Terminal.CursorFg)
	ansiColors(out, t)

	out.set("editorBracketHighlight.foreground1", s.Blue[6])
	out.set("editorBracketHighlight.foreground2", s.Pink[6])
	out.set("editorBracketHighlight.foreground3", s.Purple[6])
	out.set("editorBracketHighlight.foreground4", s.Blue[6])
	out.set("editorBracketHighlight.foreground5", s.Orange[6])
	out.set("editorBracketHighlight.foreground6", s.Purple[6])

	out.set("gitDecoration.addedResourceForeground", s.Green[5])
	out.set("gitDecoration.modifiedResourceForeground", s.Blue[6])
	out.set("gitDecoration.deletedResourceForeground", s.Red[5])
	out.set("gitDecoration.untrackedResourceForeground", s.Green[5])
	out.set("gitDecoration.ignoredResourceForeground", s.Gray[4])
	out.set("gitDecoration.conflictingResourceForeground", s.Orange[6])
	out.set("gitDecoration.submoduleResourceForeground", s.Gray[4])

	out.set("debugToolBar.background", c.Debug.ToolBarBg)
	out.set("editor.stackFrameHighlightBackground", c.Debug.StackFrameBg)
	out.set("editor.focusedStackFrameHighlightBackground", c.Debug.FocusedStackFrameBg)

	// The peek view colors are tuned for dark surfaces only.
	out.set("peekViewEditor.matchHighlightBackground", darkOnly(st, c.PeekView.MatchHighlightBg))
	out.set("peekViewResult.matchHighlightBackground", darkOnly(st, c.PeekView.MatchHighlightBg))
	out.set("peekViewEditor.background", darkOnly(st, c.PeekView.EditorBg))
	out.set("peekViewResult.background", darkOnly(st, c.PeekView.ResultBg))

	out.set("settings.headerForeground", workbench)
	out.set("settings.modifiedItemIndicator", s.Blue[4])
	out.set("welcomePage.buttonBackground", c.Welcome.ButtonBg)
	out.set("welcomePage.buttonHoverBackground", c.Welcome.ButtonHoverBg)
	out.set("widget.shadow", c.Popover.Shadow)

	return out
}

// ansiColors maps the integrated terminal palette. Blue, red and the bright
// magenta sit one ramp step away from tokens.ANSI.
func ansiColors(out colorSet, t *tokens.Tree) {
	s := t.Scale
	pick := func(light, dark string) string {
		return style.Pair[string]{Light: light, Dark: dark}.Pick(t.Style)
	}

	out.set("terminal.ansiBrightWhite", pick(s.Gray[3], s.Gray[9]))
	out.set("terminal.ansiWhite", pick(s.Gray[5], s.Gray[6]))
	out.set("terminal.ansiBrightBlack", pick(s.Gray[4], s.Gray[5]))
	out.set("terminal.ansiBlack", pick(s.Gray[9], s.Gray[3]))
	out.set("terminal.ansiBlue", s.Blue[5])
	out.set("terminal.ansiBrightBlue", s.Blue[6])
	out.set("terminal.ansiGreen", s.Green[5])
	out.set("terminal.ansiBrightGreen", s.Green[6])
	out.set("terminal.ansiCyan", t.ANSI.Cyan)
	out.set("terminal.ansiBrightCyan", t.ANSI.BrightCyan)
	out.set("terminal.ansiRed", s.Red[5])
	out.set("terminal.ansiBrightRed", s.Red[6])
	out.set("terminal.ansiMagenta", s.Purple[6])
	out.set("terminal.ansiBrightMagenta", s.Purple[6])
	out.set("terminal.ansiYellow", t.ANSI.Yellow)
	out.set("terminal.ansiBrightYellow", t.ANSI.BrightYellow)
}
