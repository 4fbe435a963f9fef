// Package cli implements the myrt command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/myrt-theme/myrt/internal/config"
	"github.com/myrt-theme/myrt/internal/logging"
	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
)

var (
	cfgFile    string
	jsonOutput bool
	logLevel   string
	logFormat  string
	quiet      bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "myrt",
	Short: "Generate the Myrt color themes",
	Long: `myrt derives light and dark editor and terminal color themes from a
single palette table.

Build writes a VS Code theme and a Ghostty theme for each style. The other
commands inspect the palette, the token tree and the color math.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./myrt.yaml or ~/.config/myrt/myrt.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log errors and suppress progress output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func initApp(cmd *cobra.Command) error {
	v := config.New(cfgFile)
	if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.format", cmd.Root().PersistentFlags().Lookup("log-format")); err != nil {
		return err
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if quiet {
		level = "error"
	}
	if err := logging.Init(logging.Config{Level: level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()}); err != nil {
		return err
	}

	appConfig = cfg
	if cfg.Path != "" {
		logger := logging.Component("config")
		logger.Debug().Str("path", cfg.Path).Msg("loaded config")
	}
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig == nil {
		cfg := config.Defaults()
		return &cfg
	}
	return appConfig
}

// loadPalette returns the built-in table with the configured overlay applied.
func loadPalette(cfg *config.Config) (palette.Table, error) {
	if cfg.Palette.File == "" {
		return palette.Default(), nil
	}
	table, err := palette.LoadFile(cfg.Palette.File, palette.Default())
	if err != nil {
		return palette.Table{}, err
	}
	logger := logging.Component("palette")
	logger.Debug().Str("file", cfg.Palette.File).Msg("loaded palette overlay")
	return table, nil
}

func addStyleFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "style", "s", string(style.Dark), "theme style (light or dark)")
}
