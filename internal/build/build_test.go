package build

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrt-theme/myrt/internal/config"
	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.Output.Dir = t.TempDir()
	return &cfg
}

func TestRunWritesBothStylesPerTarget(t *testing.T) {
	cfg := testConfig(t)
	targets, err := Targets(cfg, nil)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	result, err := New(zerolog.Nop()).Run(context.Background(), palette.Default(), targets)
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 4)

	paths := make(map[string]Artifact)
	for _, a := range result.Artifacts {
		paths[a.Path] = a
		info, err := os.Stat(a.Path)
		require.NoError(t, err)
		assert.Equal(t, info.Size(), a.Size)
	}

	vscodeDark := filepath.Join(cfg.Output.Dir, "vscode", "dark.json")
	require.Contains(t, paths, vscodeDark)
	assert.Equal(t, style.Dark, paths[vscodeDark].Style)
	require.Contains(t, paths, filepath.Join(cfg.Output.Dir, "vscode", "light.json"))
	require.Contains(t, paths, filepath.Join(cfg.Output.Dir, "ghostty", "myrt-light"))
	require.Contains(t, paths, filepath.Join(cfg.Output.Dir, "ghostty", "myrt-dark"))

	data, err := os.ReadFile(vscodeDark)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Myrt Dark", doc["name"])
	assert.Equal(t, "dark", doc["type"])

	data, err = os.ReadFile(filepath.Join(cfg.Output.Dir, "ghostty", "myrt-light"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "selection-background = #d2e3f8\n")

	assert.Equal(t, result.TotalSize(), sumSizes(result.Artifacts))
	assert.NotEmpty(t, result.Artifacts[0].HumanSize())
}

func sumSizes(artifacts []Artifact) int64 {
	var n int64
	for _, a := range artifacts {
		n += a.Size
	}
	return n
}

func TestRunFailsOnUnwritableDir(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(cfg.Output.Dir, "ghostty")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	targets, err := Targets(cfg, []string{"ghostty"})
	require.NoError(t, err)
	_, err = New(zerolog.Nop()).Run(context.Background(), palette.Default(), targets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target ghostty")
}

func TestRunFailsOnBadPalette(t *testing.T) {
	cfg := testConfig(t)
	targets, err := Targets(cfg, nil)
	require.NoError(t, err)

	table := palette.Default()
	table.Green[2] = "green"
	_, err = New(zerolog.Nop()).Run(context.Background(), table, targets)
	require.Error(t, err)

	_, err = os.Stat(filepath.Join(cfg.Output.Dir, "vscode", "light.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunHonoursCancellation(t *testing.T) {
	cfg := testConfig(t)
	targets, err := Targets(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(zerolog.Nop()).Run(ctx, palette.Default(), targets)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTargetsSelection(t *testing.T) {
	cfg := testConfig(t)

	targets, err := Targets(cfg, []string{" VSCode "})
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, TargetVSCode, targets[0].Name())
	assert.Equal(t, filepath.Join(cfg.Output.Dir, "vscode"), targets[0].Dir())

	cfg.Targets.VSCode.Enabled = false
	targets, err = Targets(cfg, nil)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, TargetGhostty, targets[0].Name())

	targets, err = Targets(cfg, []string{"vscode", "ghostty"})
	require.NoError(t, err)
	assert.Len(t, targets, 2)

	_, err = Targets(cfg, []string{"emacs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emacs")

	cfg.Targets.Ghostty.Enabled = false
	_, err = Targets(cfg, nil)
	require.Error(t, err)
}

func TestRejectsUnsafeArtifactName(t *testing.T) {
	cfg := testConfig(t)
	cfg.Targets.Ghostty.DarkFile = "../escape"
	targets, err := Targets(cfg, []string{"ghostty"})
	require.NoError(t, err)

	_, err = New(zerolog.Nop()).Run(context.Background(), palette.Default(), targets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid artifact name")
}

func TestWatcherRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "myrt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	w, err := NewWatcher(zerolog.Nop(), []string{path}, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var builds atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) ([]string, error) {
			builds.Add(1)
			return nil, nil
		})
	}()

	require.Eventually(t, func() bool {
		// Rewrite until the watcher has registered and fired.
		_ = os.WriteFile(path, []byte("output:\n  dir: b\n"), 0o644)
		return builds.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("black: \"#000\"\n"), 0o644))

	w, err := NewWatcher(zerolog.Nop(), []string{path}, 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var builds atomic.Int32
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(other, []byte(strings.Repeat("x", 10)), 0o644)
	}()
	require.NoError(t, w.Run(ctx, func(context.Context) ([]string, error) {
		builds.Add(1)
		return nil, nil
	}))
	assert.Zero(t, builds.Load())
}

func TestWatcherFollowsReturnedFiles(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	cfgPath := filepath.Join(oldDir, "myrt.yaml")
	oldPalette := filepath.Join(oldDir, "old.yaml")
	newPalette := filepath.Join(newDir, "new.yaml")
	for _, path := range []string{cfgPath, oldPalette, newPalette} {
		require.NoError(t, os.WriteFile(path, []byte("# v1\n"), 0o644))
	}

	w, err := NewWatcher(zerolog.Nop(), []string{cfgPath, oldPalette}, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var builds atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) ([]string, error) {
			builds.Add(1)
			return []string{cfgPath, newPalette}, nil
		})
	}()

	// The first rebuild switches the palette file.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(cfgPath, []byte("palette:\n  file: new.yaml\n"), 0o644)
		return builds.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	settled := builds.Load()
	require.NoError(t, os.WriteFile(oldPalette, []byte("# v2\n"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, settled, builds.Load(), "old palette still triggers rebuilds")

	require.Eventually(t, func() bool {
		_ = os.WriteFile(newPalette, []byte("# v3\n"), 0o644)
		return builds.Load() > settled
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []string{cfgPath, newPalette}, w.Files())
}

func TestNewWatcherRequiresFiles(t *testing.T) {
	_, err := NewWatcher(zerolog.Nop(), nil, 0)
	require.Error(t, err)
}
