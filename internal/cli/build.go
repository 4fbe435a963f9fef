package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/myrt-theme/myrt/internal/build"
	"github.com/myrt-theme/myrt/internal/config"
	"github.com/myrt-theme/myrt/internal/logging"
)

var (
	buildTargets []string
	buildOutDir  string
	buildWatch   bool
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringSliceVarP(&buildTargets, "target", "t", nil, "targets to build ("+strings.Join(build.Names, ", ")+"); default: enabled targets")
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "output directory (overrides output.dir)")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when the config or palette file changes")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the theme files",
	Long: `Render a light and a dark artifact for every target.

VS Code themes are written as light.json and dark.json, Ghostty themes as
myrt-light and myrt-dark, under output.dir/<target dir>.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		out := cmd.OutOrStdout()

		cfg := cfgWithOverrides(GetConfig())
		if err := runBuild(ctx, out, cfg); err != nil {
			return err
		}
		if !buildWatch {
			return nil
		}

		files := cfg.WatchedFiles()
		if len(files) == 0 {
			return errors.New("--watch needs a config file or palette file to watch")
		}
		watcher, err := build.NewWatcher(logging.Component("watch"), files, build.DefaultDebounce)
		if err != nil {
			return err
		}
		return watcher.Run(ctx, func(ctx context.Context) ([]string, error) {
			reloaded, err := config.Load(cfg.Path)
			if err != nil {
				return nil, err
			}
			if err := runBuild(ctx, out, cfgWithOverrides(reloaded)); err != nil {
				return nil, err
			}
			// palette.file may have moved.
			return reloaded.WatchedFiles(), nil
		})
	},
}

func cfgWithOverrides(cfg *config.Config) *config.Config {
	copied := *cfg
	if buildOutDir != "" {
		copied.Output.Dir = buildOutDir
	}
	return &copied
}

func runBuild(ctx context.Context, out io.Writer, cfg *config.Config) error {
	table, err := loadPalette(cfg)
	if err != nil {
		return err
	}
	targets, err := build.Targets(cfg, buildTargets)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name())
	}
	progress := startProgress("Building " + strings.Join(names, ", "))
	result, err := build.New(logging.Component("build")).Run(ctx, table, targets)
	if err != nil {
		progress.Fail(err)
		return err
	}
	progress.Done()

	if IsJSONOutput() {
		return WriteOutput(out, result)
	}
	if quiet {
		return nil
	}

	rows := make([][]string, 0, len(result.Artifacts))
	for _, a := range result.Artifacts {
		rows = append(rows, []string{a.Target, a.Style.String(), a.Path, a.HumanSize()})
	}
	if err := writeTable(out, []string{"TARGET", "STYLE", "PATH", "SIZE"}, rows, 3); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%d files, %s\n", len(result.Artifacts), humanize.Bytes(uint64(result.TotalSize())))
	return err
}
