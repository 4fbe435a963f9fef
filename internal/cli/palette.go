package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
)

var (
	paletteStyle string
	paletteYAML  bool
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	addStyleFlag(paletteCmd, &paletteStyle)
	paletteCmd.Flags().BoolVar(&paletteYAML, "yaml", false, "print the resolved table as a palette file")
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the resolved palette ramps",
	Long: `Print the palette table resolved for a style. Dark reverses every ramp
and swaps black and white.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := style.Parse(paletteStyle)
		if err != nil {
			return err
		}
		base, err := loadPalette(GetConfig())
		if err != nil {
			return err
		}
		table, err := palette.Resolve(base, s)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		switch {
		case paletteYAML:
			data, err := palette.Marshal(table)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		case IsJSONOutput():
			return WriteOutput(out, table)
		}

		headers := []string{"RAMP"}
		for i := 0; i < palette.RampSize; i++ {
			headers = append(headers, strconv.Itoa(i))
		}
		rows := [][]string{
			{"black", table.Black},
			{"white", table.White},
		}
		for _, name := range palette.RampNames {
			ramp, _ := table.Ramp(name)
			rows = append(rows, append([]string{name}, ramp[:]...))
		}
		return writeTable(out, headers, rows)
	},
}
