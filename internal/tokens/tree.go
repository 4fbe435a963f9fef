// Package tokens assembles the semantic design-token tree for one style.
package tokens

import (
	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
)

// Tree is the resolved token set for one (style, name) pair. Every string
// leaf tagged with a json name is a color; its dotted json path is the token
// path. The shape is identical for both styles.
type Tree struct {
	Name  string        `json:"-" yaml:"-"`
	Style style.Style   `json:"-" yaml:"-"`
	Scale palette.Table `json:"-" yaml:"-"`

	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
	Accent     string `json:"accent" yaml:"accent"`

	UI        UI        `json:"ui" yaml:"ui"`
	Brand     Brand     `json:"brand" yaml:"brand"`
	States    States    `json:"states" yaml:"states"`
	Syntax    Syntax    `json:"syntax" yaml:"syntax"`
	Component Component `json:"component" yaml:"component"`
	ANSI      ANSI      `json:"ansi" yaml:"ansi"`
}

type UI struct {
	BG struct {
		Canvas   string `json:"canvas" yaml:"canvas"`
		Subtle   string `json:"subtle" yaml:"subtle"`
		Elevated string `json:"elevated" yaml:"elevated"`
	} `json:"bg" yaml:"bg"`
	FG struct {
		Default   string `json:"default" yaml:"default"`
		Muted     string `json:"muted" yaml:"muted"`
		Subtle    string `json:"subtle" yaml:"subtle"`
		Cursor    string `json:"cursor" yaml:"cursor"`
		Workbench string `json:"workbench" yaml:"workbench"`
	} `json:"fg" yaml:"fg"`
	Border struct {
		Default string `json:"default" yaml:"default"`
		Subtle  string `json:"subtle" yaml:"subtle"`
	} `json:"border" yaml:"border"`
}

type Brand struct {
	Accent struct {
		Default      string `json:"default" yaml:"default"`
		Emphasis     string `json:"emphasis" yaml:"emphasis"`
		Focus        string `json:"focus" yaml:"focus"`
		SubtleBg     string `json:"subtleBg" yaml:"subtleBg"`
		On           string `json:"on" yaml:"on"`
		ActiveBorder string `json:"activeBorder" yaml:"activeBorder"`
	} `json:"accent" yaml:"accent"`
}

// State is a foreground/background/border triple for a status color.
type State struct {
	FG     string `json:"fg" yaml:"fg"`
	BG     string `json:"bg" yaml:"bg"`
	Border string `json:"border" yaml:"border"`
}

type States struct {
	Success State `json:"success" yaml:"success"`
	Info    State `json:"info" yaml:"info"`
	Warning State `json:"warning" yaml:"warning"`
	Danger  State `json:"danger" yaml:"danger"`
}

type Syntax struct {
	Comment      string `json:"comment" yaml:"comment"`
	Keyword      string `json:"keyword" yaml:"keyword"`
	Function     string `json:"function" yaml:"function"`
	Attribute    string `json:"attribute" yaml:"attribute"`
	Decorator    string `json:"decorator" yaml:"decorator"`
	Tag          string `json:"tag" yaml:"tag"`
	Variable     string `json:"variable" yaml:"variable"`
	Identifier   string `json:"identifier" yaml:"identifier"`
	Constant     string `json:"constant" yaml:"constant"`
	PropertyName string `json:"propertyName" yaml:"propertyName"`
	Support      string `json:"support" yaml:"support"`
	String       string `json:"string" yaml:"string"`
	Punctuation  string `json:"punctuation" yaml:"punctuation"`
	Regexp       string `json:"regexp" yaml:"regexp"`
	Invalid      string `json:"invalid" yaml:"invalid"`
	Muted        string `json:"muted" yaml:"muted"`
	Word         string `json:"word" yaml:"word"`
}

type Component struct {
	TitleBar struct {
		ActiveBg   string `json:"activeBg" yaml:"activeBg"`
		ActiveFg   string `json:"activeFg" yaml:"activeFg"`
		InactiveBg string `json:"inactiveBg" yaml:"inactiveBg"`
		InactiveFg string `json:"inactiveFg" yaml:"inactiveFg"`
		Border     string `json:"border" yaml:"border"`
	} `json:"titleBar" yaml:"titleBar"`

	ActivityBar struct {
		Bg           string `json:"bg" yaml:"bg"`
		Fg           string `json:"fg" yaml:"fg"`
		InactiveFg   string `json:"inactiveFg" yaml:"inactiveFg"`
		BadgeBg      string `json:"badgeBg" yaml:"badgeBg"`
		BadgeFg      string `json:"badgeFg" yaml:"badgeFg"`
		Border       string `json:"border" yaml:"border"`
		ActiveBorder string `json:"activeBorder" yaml:"activeBorder"`
	} `json:"activityBar" yaml:"activityBar"`

	SideBar struct {
		Bg           string `json:"bg" yaml:"bg"`
		Fg           string `json:"fg" yaml:"fg"`
		SectionBg    string `json:"sectionBg" yaml:"sectionBg"`
		SectionFg    string `json:"sectionFg" yaml:"sectionFg"`
		Border       string `json:"border" yaml:"border"`
		StickyScroll struct {
			Border string `json:"border" yaml:"border"`
			Shadow string `json:"shadow" yaml:"shadow"`
		} `json:"stickyScroll" yaml:"stickyScroll"`
	} `json:"sideBar" yaml:"sideBar"`

	StatusBar struct {
		Bg          string `json:"bg" yaml:"bg"`
		Fg          string `json:"fg" yaml:"fg"`
		Border      string `json:"border" yaml:"border"`
		ProminentBg string `json:"prominentBg" yaml:"prominentBg"`
		DebuggingBg string `json:"debuggingBg" yaml:"debuggingBg"`
		DebuggingFg string `json:"debuggingFg" yaml:"debuggingFg"`
	} `json:"statusBar" yaml:"statusBar"`

	Breadcrumb struct {
		Fg                string `json:"fg" yaml:"fg"`
		ActiveSelectionFg string `json:"activeSelectionFg" yaml:"activeSelectionFg"`
		PickerBg          string `json:"pickerBg" yaml:"pickerBg"`
	} `json:"breadcrumb" yaml:"breadcrumb"`

	QuickInput struct {
		Bg string `json:"bg" yaml:"bg"`
		Fg string `json:"fg" yaml:"fg"`
	} `json:"quickInput" yaml:"quickInput"`

	PickerGroup struct {
		Border string `json:"border" yaml:"border"`
		Fg     string `json:"fg" yaml:"fg"`
	} `json:"pickerGroup" yaml:"pickerGroup"`

	EditorGroup struct {
		TabsBg     string `json:"tabsBg" yaml:"tabsBg"`
		TabsBorder string `json:"tabsBorder" yaml:"tabsBorder"`
		Border     string `json:"border" yaml:"border"`
	} `json:"editorGroup" yaml:"editorGroup"`

	Button struct {
		Primary   Button `json:"primary" yaml:"primary"`
		Secondary Button `json:"secondary" yaml:"secondary"`
	} `json:"button" yaml:"button"`

	Dropdown struct {
		Bg     string `json:"bg" yaml:"bg"`
		Border string `json:"border" yaml:"border"`
		Fg     string `json:"fg" yaml:"fg"`
		ListBg string `json:"listBg" yaml:"listBg"`
	} `json:"dropdown" yaml:"dropdown"`

	Checkbox struct {
		Bg     string `json:"bg" yaml:"bg"`
		Border string `json:"border" yaml:"border"`
	} `json:"checkbox" yaml:"checkbox"`

	Input struct {
		Bg            string `json:"bg" yaml:"bg"`
		Border        string `json:"border" yaml:"border"`
		Fg            string `json:"fg" yaml:"fg"`
		PlaceholderFg string `json:"placeholderFg" yaml:"placeholderFg"`
	} `json:"input" yaml:"input"`

	List struct {
		HoverBg             string `json:"hoverBg" yaml:"hoverBg"`
		InactiveSelectionBg string `json:"inactiveSelectionBg" yaml:"inactiveSelectionBg"`
		ActiveSelBg         string `json:"activeSelBg" yaml:"activeSelBg"`
		InactiveFocusBg     string `json:"inactiveFocusBg" yaml:"inactiveFocusBg"`
		FocusBg             string `json:"focusBg" yaml:"focusBg"`
	} `json:"list" yaml:"list"`

	Editor Editor `json:"editor" yaml:"editor"`

	DiffEditor struct {
		InsertedBg string `json:"insertedBg" yaml:"insertedBg"`
		RemovedBg  string `json:"removedBg" yaml:"removedBg"`
	} `json:"diffEditor" yaml:"diffEditor"`

	ScrollbarSlider struct {
		Bg       string `json:"bg" yaml:"bg"`
		HoverBg  string `json:"hoverBg" yaml:"hoverBg"`
		ActiveBg string `json:"activeBg" yaml:"activeBg"`
	} `json:"scrollbarSlider" yaml:"scrollbarSlider"`

	Terminal struct {
		Fg              string `json:"fg" yaml:"fg"`
		CursorBg        string `json:"cursorBg" yaml:"cursorBg"`
		CursorFg        string `json:"cursorFg" yaml:"cursorFg"`
		TabActiveBorder string `json:"tabActiveBorder" yaml:"tabActiveBorder"`
		SelectionBg     string `json:"selectionBg" yaml:"selectionBg"`
	} `json:"terminal" yaml:"terminal"`

	Debug struct {
		ToolBarBg           string `json:"toolBarBg" yaml:"toolBarBg"`
		StackFrameBg        string `json:"stackFrameBg" yaml:"stackFrameBg"`
		FocusedStackFrameBg string `json:"focusedStackFrameBg" yaml:"focusedStackFrameBg"`
	} `json:"debug" yaml:"debug"`

	Panel struct {
		Bg                string `json:"bg" yaml:"bg"`
		Border            string `json:"border" yaml:"border"`
		TitleActiveBorder string `json:"titleActiveBorder" yaml:"titleActiveBorder"`
	} `json:"panel" yaml:"panel"`

	PeekView struct {
		MatchHighlightBg string `json:"matchHighlightBg" yaml:"matchHighlightBg"`
		EditorBg         string `json:"editorBg" yaml:"editorBg"`
		ResultBg         string `json:"resultBg" yaml:"resultBg"`
	} `json:"peekView" yaml:"peekView"`

	Welcome struct {
		ButtonBg      string `json:"buttonBg" yaml:"buttonBg"`
		ButtonHoverBg string `json:"buttonHoverBg" yaml:"buttonHoverBg"`
	} `json:"welcome" yaml:"welcome"`

	Popover struct {
		Shadow string `json:"shadow" yaml:"shadow"`
	} `json:"popover" yaml:"popover"`
}

// Button is a background/foreground/hover triple.
type Button struct {
	Bg      string `json:"bg" yaml:"bg"`
	Fg      string `json:"fg" yaml:"fg"`
	HoverBg string `json:"hoverBg" yaml:"hoverBg"`
}

type Editor struct {
	Fg                        string `json:"fg" yaml:"fg"`
	Bg                        string `json:"bg" yaml:"bg"`
	LineHighlightBg           string `json:"lineHighlightBg" yaml:"lineHighlightBg"`
	LineNumberFg              string `json:"lineNumberFg" yaml:"lineNumberFg"`
	IndentGuideBg             string `json:"indentGuideBg" yaml:"indentGuideBg"`
	IndentGuideActiveBg       string `json:"indentGuideActiveBg" yaml:"indentGuideActiveBg"`
	InactiveSelectionBg       string `json:"inactiveSelectionBg" yaml:"inactiveSelectionBg"`
	SelectionBg               string `json:"selectionBg" yaml:"selectionBg"`
	SelectionHlBg             string `json:"selectionHlBg" yaml:"selectionHlBg"`
	SelectionHlBorder         string `json:"selectionHlBorder" yaml:"selectionHlBorder"`
	FoldBg                    string `json:"foldBg" yaml:"foldBg"`
	FindMatchBg               string `json:"findMatchBg" yaml:"findMatchBg"`
	FindMatchHighlightBg      string `json:"findMatchHighlightBg" yaml:"findMatchHighlightBg"`
	LinkedEditingBg           string `json:"linkedEditingBg" yaml:"linkedEditingBg"`
	WordHighlightBg           string `json:"wordHighlightBg" yaml:"wordHighlightBg"`
	WordHighlightStrongBg     string `json:"wordHighlightStrongBg" yaml:"wordHighlightStrongBg"`
	WordHighlightBorder       string `json:"wordHighlightBorder" yaml:"wordHighlightBorder"`
	WordHighlightStrongBorder string `json:"wordHighlightStrongBorder" yaml:"wordHighlightStrongBorder"`
	BracketMatchBg            string `json:"bracketMatchBg" yaml:"bracketMatchBg"`
	BracketMatchBorder        string `json:"bracketMatchBorder" yaml:"bracketMatchBorder"`
	GhostTextBg               string `json:"ghostTextBg" yaml:"ghostTextBg"`
}

type ANSI struct {
	Black         string `json:"black" yaml:"black"`
	Red           string `json:"red" yaml:"red"`
	Green         string `json:"green" yaml:"green"`
	Yellow        string `json:"yellow" yaml:"yellow"`
	Blue          string `json:"blue" yaml:"blue"`
	Magenta       string `json:"magenta" yaml:"magenta"`
	Cyan          string `json:"cyan" yaml:"cyan"`
	White         string `json:"white" yaml:"white"`
	BrightBlack   string `json:"brightBlack" yaml:"brightBlack"`
	BrightRed     string `json:"brightRed" yaml:"brightRed"`
	BrightGreen   string `json:"brightGreen" yaml:"brightGreen"`
	BrightYellow  string `json:"brightYellow" yaml:"brightYellow"`
	BrightBlue    string `json:"brightBlue" yaml:"brightBlue"`
	BrightMagenta string `json:"brightMagenta" yaml:"brightMagenta"`
	BrightCyan    string `json:"brightCyan" yaml:"brightCyan"`
	BrightWhite   string `json:"brightWhite" yaml:"brightWhite"`
}

// Palette16 returns the ANSI colors in terminal index order (0-15).
func (a ANSI) Palette16() [16]string {
	return [16]string{
		a.Black, a.Red, a.Green, a.Yellow, a.Blue, a.Magenta, a.Cyan, a.White,
		a.BrightBlack, a.BrightRed, a.BrightGreen, a.BrightYellow,
		a.BrightBlue, a.BrightMagenta, a.BrightCyan, a.BrightWhite,
	}
}
