package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, cfg)
		}

		source := cfg.Path
		if source == "" {
			source = "(defaults)"
		}
		paletteFile := cfg.Palette.File
		if paletteFile == "" {
			paletteFile = "(built-in)"
		}
		if _, err := fmt.Fprintf(out, "config:  %s\npalette: %s\n\n", source, paletteFile); err != nil {
			return err
		}
		return writeTable(out, []string{"TARGET", "STATE", "DIR", "LIGHT", "DARK"}, [][]string{
			{"ghostty", formatEnabled(cfg.Targets.Ghostty.Enabled), cfg.GhosttyDir(), cfg.Targets.Ghostty.LightFile, cfg.Targets.Ghostty.DarkFile},
			{"vscode", formatEnabled(cfg.Targets.VSCode.Enabled), cfg.VSCodeDir(), cfg.Targets.VSCode.LightName, cfg.Targets.VSCode.DarkName},
		})
	},
}
