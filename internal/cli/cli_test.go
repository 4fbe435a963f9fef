package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrt-theme/myrt/internal/build"
)

// runCLI executes the root command in a scratch directory with flags reset.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MYRT_NO_PROGRESS", "1")
	t.Chdir(t.TempDir())
	resetFlags(rootCmd)
	appConfig = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBuildCommandWritesArtifacts(t *testing.T) {
	out := t.TempDir()
	stdout, _, err := runCLI(t, "build", "--out", out)
	require.NoError(t, err)

	for _, rel := range []string{"vscode/light.json", "vscode/dark.json", "ghostty/myrt-light", "ghostty/myrt-dark"} {
		_, err := os.Stat(filepath.Join(out, rel))
		require.NoError(t, err, rel)
	}
	assert.Contains(t, stdout, "TARGET")
	assert.Contains(t, stdout, "4 files")
}

func TestBuildCommandJSONAndTargetFilter(t *testing.T) {
	out := t.TempDir()
	stdout, _, err := runCLI(t, "--json", "build", "--out", out, "--target", "ghostty")
	require.NoError(t, err)

	var result build.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Artifacts, 2)
	for _, a := range result.Artifacts {
		assert.Equal(t, build.TargetGhostty, a.Target)
	}
	_, err = os.Stat(filepath.Join(out, "vscode"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuildCommandUsesConfigAndPalette(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.yaml", "black: \"#000000\"\n")
	cfgPath := writeFile(t, dir, "myrt.yaml", `
palette:
  file: colors.yaml
output:
  dir: `+filepath.Join(dir, "dist")+`
targets:
  vscode:
    dark_name: Night Owl
`)

	_, _, err := runCLI(t, "--config", cfgPath, "build", "--target", "vscode")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "dist", "vscode", "dark.json"))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Night Owl", doc["name"])
}

func TestBuildCommandErrors(t *testing.T) {
	_, _, err := runCLI(t, "build", "--target", "emacs")
	require.Error(t, err)

	dir := t.TempDir()
	blocker := writeFile(t, dir, "blocked", "file")
	_, _, err = runCLI(t, "build", "--out", blocker)
	require.Error(t, err)

	dir = t.TempDir()
	writeFile(t, dir, "colors.yaml", "ramps:\n  red: [\"#fff\"]\n")
	cfgPath := writeFile(t, dir, "myrt.yaml", "palette:\n  file: colors.yaml\n")
	_, _, err = runCLI(t, "--config", cfgPath, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "red")
}

func TestWatchRequiresInputs(t *testing.T) {
	_, _, err := runCLI(t, "build", "--out", t.TempDir(), "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch")
}

func TestTokensCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "tokens", "--style", "light", "syntax.keyword")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[1], "syntax.keyword "), lines[1])
	assert.Contains(t, lines[1], "#d73a49")

	stdout, _, err = runCLI(t, "--json", "tokens", "--style", "dark")
	require.NoError(t, err)
	var entries []TokenEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.NotEmpty(t, entries)
	found := false
	for _, e := range entries {
		if e.Path == "ui.bg.canvas" {
			found = true
			assert.Equal(t, "#24292e", e.Value)
		}
	}
	assert.True(t, found)

	stdout, _, err = runCLI(t, "tokens", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "syntax:")
	assert.Contains(t, stdout, "keyword:")

	_, _, err = runCLI(t, "tokens", "--style", "sepia")
	require.Error(t, err)
}

func TestPaletteCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "palette", "--style", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RAMP")
	grayRow := ""
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "gray ") {
			grayRow = line
		}
	}
	require.NotEmpty(t, grayRow)
	fields := strings.Fields(grayRow)
	require.Len(t, fields, 11)
	assert.Equal(t, "#24292e", fields[1])
	assert.Equal(t, "#fafbfc", fields[10])

	stdout, _, err = runCLI(t, "palette", "--style", "light", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ramps:")
}

func TestColorCommands(t *testing.T) {
	stdout, _, err := runCLI(t, "color", "variant", "#ffffff", "--style", "dark")
	require.NoError(t, err)
	assert.Equal(t, "#000000\n", stdout)

	stdout, _, err = runCLI(t, "color", "flatten", "#fff", "#0366d62e")
	require.NoError(t, err)
	assert.Equal(t, "#d2e3f8\n", stdout)

	stdout, _, err = runCLI(t, "--json", "color", "alpha", "#0366d6", "0.18")
	require.NoError(t, err)
	var result ColorResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "alpha", result.Op)
	assert.Equal(t, "#0366d62e", result.Result)

	_, _, err = runCLI(t, "color", "alpha", "#000", "half")
	require.Error(t, err)
	_, _, err = runCLI(t, "color", "alpha", "#fff", "NaN")
	require.Error(t, err)
	_, _, err = runCLI(t, "color", "variant", "red")
	require.Error(t, err)
}

func TestPreviewCommandIsPlainWhenNotATerminal(t *testing.T) {
	stdout, _, err := runCLI(t, "preview", "--style", "light")
	require.NoError(t, err)
	assert.Contains(t, stdout, "syntax.keyword")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(defaults)")
	assert.Contains(t, stdout, "enabled")

	stdout, _, err = runCLI(t, "--json", "config")
	require.NoError(t, err)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	assert.Contains(t, cfg, "targets")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := runCLI(t, "--log-level", "loud", "palette")
	require.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.2s", formatDuration(1234*1e6))
	assert.Equal(t, "450ms", formatDuration(453*1e6))
}

func TestDebugLoggingReportsConfigAndPalette(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.yaml", "white: \"#fafafa\"\n")
	cfgPath := writeFile(t, dir, "myrt.yaml", "palette:\n  file: colors.yaml\n")

	_, stderr, err := runCLI(t, "--config", cfgPath, "--log-level", "debug", "--log-format", "json", "palette")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"config"`)
	assert.Contains(t, stderr, "loaded config")
	assert.Contains(t, stderr, `"component":"palette"`)
	assert.Contains(t, stderr, "loaded palette overlay")

	_, stderr, err = runCLI(t, "--config", cfgPath, "palette")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "loaded config")
}
