// Package vscode renders a token tree as a VS Code color theme document.
package vscode

import (
	"encoding/json"
	"fmt"

	"github.com/myrt-theme/myrt/internal/style"
	"github.com/myrt-theme/myrt/internal/tokens"
)

// Options control the emitted document.
type Options struct {
	SemanticHighlighting bool
}

// Document is the VS Code theme file schema.
type Document struct {
	Name                 string            `json:"name"`
	Type                 string            `json:"type"`
	Colors               map[string]string `json:"colors"`
	SemanticHighlighting bool              `json:"semanticHighlighting"`
	TokenColors          []TokenColor      `json:"tokenColors"`
	SemanticTokenColors  map[string]string `json:"semanticTokenColors"`
}

// TokenColor styles one group of TextMate scopes.
type TokenColor struct {
	Name     string   `json:"name,omitempty"`
	Scope    Scopes   `json:"scope"`
	Settings Settings `json:"settings"`
}

// Settings are the style attributes applied to a scope group.
type Settings struct {
	FontStyle  string `json:"fontStyle,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	Content    string `json:"content,omitempty"`
}

// Scopes marshals as a bare string when it holds a single scope.
type Scopes []string

func (s Scopes) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

func (s *Scopes) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Scopes{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// Build assembles the theme document for tree.
func Build(tree *tokens.Tree, opts Options) (*Document, error) {
	if tree == nil {
		return nil, fmt.Errorf("token tree is required")
	}
	if err := tree.Style.Validate(); err != nil {
		return nil, err
	}

	return &Document{
		Name:                 tree.Name,
		Type:                 string(tree.Style),
		Colors:               workbenchColors(tree),
		SemanticHighlighting: opts.SemanticHighlighting,
		TokenColors:          tokenColors(tree),
		SemanticTokenColors: map[string]string{
			"typeParameter": tree.Scale.Orange[6],
		},
	}, nil
}

// Emit renders tree as indented theme JSON.
func Emit(tree *tokens.Tree, opts Options) ([]byte, error) {
	doc, err := Build(tree, opts)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s theme: %w", tree.Style, err)
	}
	return append(data, '\n'), nil
}

// colorSet drops empty values so keys defined for a single style are
// omitted from the other style's document.
type colorSet map[string]string

func (c colorSet) set(key, value string) {
	if value == "" {
		return
	}
	c[key] = value
}

func darkOnly(s style.Style, value string) string {
	return style.Pair[string]{Dark: value}.Pick(s)
}
