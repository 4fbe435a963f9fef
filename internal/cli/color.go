package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/myrt-theme/myrt/internal/color"
	"github.com/myrt-theme/myrt/internal/style"
)

var variantStyle string

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.AddCommand(colorVariantCmd)
	colorCmd.AddCommand(colorFlattenCmd)
	colorCmd.AddCommand(colorAlphaCmd)
	addStyleFlag(colorVariantCmd, &variantStyle)
}

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Evaluate the color derivation functions",
}

var colorVariantCmd = &cobra.Command{
	Use:   "variant HEX",
	Short: "Invert the HSL lightness of a color for dark",
	Long: `Print the style variant of a color. Light returns the color unchanged;
dark mirrors its HSL lightness (l -> 1 - l) and keeps hue and saturation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := style.Parse(variantStyle)
		if err != nil {
			return err
		}
		result, err := color.Variant(args[0], s)
		if err != nil {
			return err
		}
		return writeColorResult(cmd, ColorResult{Op: "variant", Inputs: args, Style: s.String(), Result: result})
	},
}

var colorFlattenCmd = &cobra.Command{
	Use:   "flatten BG FG",
	Short: "Composite a translucent color onto a background",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := color.Flatten(args[0], args[1])
		if err != nil {
			return err
		}
		return writeColorResult(cmd, ColorResult{Op: "flatten", Inputs: args, Result: result})
	},
}

var colorAlphaCmd = &cobra.Command{
	Use:   "alpha HEX A",
	Short: "Set a color's opacity (0 to 1)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid alpha %q: %w", args[1], err)
		}
		result, err := color.Alpha(args[0], a)
		if err != nil {
			return err
		}
		return writeColorResult(cmd, ColorResult{Op: "alpha", Inputs: args, Result: result})
	},
}

// ColorResult is the output of the color subcommands.
type ColorResult struct {
	Op     string   `json:"op"`
	Inputs []string `json:"inputs"`
	Style  string   `json:"style,omitempty"`
	Result string   `json:"result"`
}

func writeColorResult(cmd *cobra.Command, result ColorResult) error {
	if IsJSONOutput() {
		return WriteOutput(cmd.OutOrStdout(), result)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Result)
	return err
}
