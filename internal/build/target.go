package build

import (
	"fmt"
	"sort"
	"strings"

	"github.com/myrt-theme/myrt/internal/config"
	"github.com/myrt-theme/myrt/internal/emit/ghostty"
	"github.com/myrt-theme/myrt/internal/emit/vscode"
	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
	"github.com/myrt-theme/myrt/internal/tokens"
)

// Target names.
const (
	TargetVSCode  = "vscode"
	TargetGhostty = "ghostty"
)

// Names lists every known target.
var Names = []string{TargetVSCode, TargetGhostty}

// File is one rendered artifact, relative to its target's directory.
type File struct {
	Name  string
	Style style.Style
	Data  []byte
}

// Target renders the light and dark artifacts for one editor or terminal.
type Target interface {
	Name() string
	Dir() string
	Render(table palette.Table) ([]File, error)
}

// VSCode writes light.json and dark.json color themes.
type VSCode struct {
	OutDir    string
	LightName string
	DarkName  string
	Options   vscode.Options
}

func (t VSCode) Name() string { return TargetVSCode }
func (t VSCode) Dir() string  { return t.OutDir }

func (t VSCode) Render(table palette.Table) ([]File, error) {
	names := style.Pair[string]{Light: t.LightName, Dark: t.DarkName}
	files := make([]File, 0, len(style.All))
	for _, s := range style.All {
		tree, err := tokens.Build(table, s, names.Pick(s))
		if err != nil {
			return nil, err
		}
		data, err := vscode.Emit(tree, t.Options)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: string(s) + ".json", Style: s, Data: data})
	}
	return files, nil
}

// Ghostty writes one theme file per style.
type Ghostty struct {
	OutDir    string
	LightFile string
	DarkFile  string
}

func (t Ghostty) Name() string { return TargetGhostty }
func (t Ghostty) Dir() string  { return t.OutDir }

func (t Ghostty) Render(table palette.Table) ([]File, error) {
	names := style.Pair[string]{Light: t.LightFile, Dark: t.DarkFile}
	files := make([]File, 0, len(style.All))
	for _, s := range style.All {
		tree, err := tokens.Build(table, s, names.Pick(s))
		if err != nil {
			return nil, err
		}
		data, err := ghostty.Emit(tree)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: names.Pick(s), Style: s, Data: data})
	}
	return files, nil
}

// Targets returns the targets to build. With no names the enabled targets
// from cfg are used; explicit names select targets regardless of enabled.
func Targets(cfg *config.Config, names []string) ([]Target, error) {
	selected := make(map[string]bool)
	if len(names) == 0 {
		selected[TargetVSCode] = cfg.Targets.VSCode.Enabled
		selected[TargetGhostty] = cfg.Targets.Ghostty.Enabled
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !known(name) {
			return nil, fmt.Errorf("unknown target %q (want one of %s)", name, strings.Join(Names, ", "))
		}
		selected[name] = true
	}

	var targets []Target
	if selected[TargetVSCode] {
		targets = append(targets, VSCode{
			OutDir:    cfg.VSCodeDir(),
			LightName: cfg.Targets.VSCode.LightName,
			DarkName:  cfg.Targets.VSCode.DarkName,
			Options:   vscode.Options{SemanticHighlighting: cfg.Targets.VSCode.SemanticHighlighting},
		})
	}
	if selected[TargetGhostty] {
		targets = append(targets, Ghostty{
			OutDir:    cfg.GhosttyDir(),
			LightFile: cfg.Targets.Ghostty.LightFile,
			DarkFile:  cfg.Targets.Ghostty.DarkFile,
		})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets enabled")
	}
	sort.SliceStable(targets, func(i, j int) bool { return targets[i].Name() < targets[j].Name() })
	return targets, nil
}

func known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}
