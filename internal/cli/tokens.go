package cli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/myrt-theme/myrt/internal/style"
	"github.com/myrt-theme/myrt/internal/tokens"
)

var (
	tokensStyle string
	tokensYAML  bool
)

func init() {
	rootCmd.AddCommand(tokensCmd)
	addStyleFlag(tokensCmd, &tokensStyle)
	tokensCmd.Flags().BoolVar(&tokensYAML, "yaml", false, "print the token tree as YAML")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [query]",
	Short: "List token paths and colors",
	Long: `List every token path with its resolved color.

The optional query is matched fuzzily against the paths, best match first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := buildTree(tokensStyle)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if tokensYAML {
			data, err := yaml.Marshal(tree)
			if err != nil {
				return fmt.Errorf("encode tokens: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		entries := matchTokens(tree, query)

		if IsJSONOutput() {
			return WriteOutput(out, entries)
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Path, e.Value})
		}
		return writeTable(out, []string{"TOKEN", "COLOR"}, rows)
	},
}

// TokenEntry is one row of `myrt tokens`.
type TokenEntry struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// matchTokens lists tree's tokens, filtered and ranked by query when set.
func matchTokens(tree *tokens.Tree, query string) []TokenEntry {
	values := tree.Paths()
	paths := tree.SortedPaths()
	if query == "" {
		entries := make([]TokenEntry, 0, len(paths))
		for _, path := range paths {
			entries = append(entries, TokenEntry{Path: path, Value: values[path]})
		}
		return entries
	}

	matches := fuzzy.Find(query, paths)
	entries := make([]TokenEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, TokenEntry{Path: m.Str, Value: values[m.Str]})
	}
	return entries
}

func buildTree(styleName string) (*tokens.Tree, error) {
	s, err := style.Parse(styleName)
	if err != nil {
		return nil, err
	}
	cfg := GetConfig()
	table, err := loadPalette(cfg)
	if err != nil {
		return nil, err
	}
	name := style.Pair[string]{
		Light: cfg.Targets.VSCode.LightName,
		Dark:  cfg.Targets.VSCode.DarkName,
	}.Pick(s)
	return tokens.Build(table, s, name)
}
