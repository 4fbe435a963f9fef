package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/myrt-theme/myrt/internal/preview"
)

var (
	previewStyle string
	previewPlain bool
)

func init() {
	rootCmd.AddCommand(previewCmd)
	addStyleFlag(previewCmd, &previewStyle)
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "print hex values without color")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show color swatches for a style",
	Long: `Render the palette ramps, syntax colors, ANSI palette and state colors
as terminal swatches. Output is plain when stdout is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := buildTree(previewStyle)
		if err != nil {
			return err
		}
		plain := previewPlain || !stdoutIsTerminal(cmd)
		return preview.Render(cmd.OutOrStdout(), tree, preview.Options{Plain: plain})
	},
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
