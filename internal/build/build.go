// Package build renders theme targets and writes the artifacts to disk.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/myrt-theme/myrt/internal/palette"
	"github.com/myrt-theme/myrt/internal/style"
)

// Artifact describes one written file.
type Artifact struct {
	Target string      `json:"target"`
	Style  style.Style `json:"style"`
	Path   string      `json:"path"`
	Size   int64       `json:"size"`
}

// HumanSize formats the artifact size for display.
func (a Artifact) HumanSize() string {
	return humanize.Bytes(uint64(a.Size))
}

// Result is the outcome of one build.
type Result struct {
	Artifacts []Artifact    `json:"artifacts"`
	Duration  time.Duration `json:"duration"`
}

// TotalSize sums the artifact sizes.
func (r Result) TotalSize() int64 {
	var total int64
	for _, a := range r.Artifacts {
		total += a.Size
	}
	return total
}

// Builder renders targets concurrently.
type Builder struct {
	logger zerolog.Logger
}

// New returns a Builder logging to logger.
func New(logger zerolog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Run renders every target from table and writes the artifacts. The first
// failing target cancels the rest and its error is returned.
func (b *Builder) Run(ctx context.Context, table palette.Table, targets []Target) (*Result, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets to build")
	}
	started := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	written := make([][]Artifact, len(targets))
	for i, target := range targets {
		g.Go(func() error {
			artifacts, err := b.runTarget(ctx, table, target)
			if err != nil {
				return fmt.Errorf("target %s: %w", target.Name(), err)
			}
			written[i] = artifacts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Duration: time.Since(started)}
	for _, artifacts := range written {
		result.Artifacts = append(result.Artifacts, artifacts...)
	}
	b.logger.Info().
		Int("artifacts", len(result.Artifacts)).
		Str("size", humanize.Bytes(uint64(result.TotalSize()))).
		Dur("duration", result.Duration).
		Msg("build complete")
	return result, nil
}

func (b *Builder) runTarget(ctx context.Context, table palette.Table, target Target) ([]Artifact, error) {
	files, err := target.Render(table)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := target.Dir()
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	artifacts := make([]Artifact, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if file.Name == "" || filepath.Base(file.Name) != file.Name {
			return nil, fmt.Errorf("invalid artifact name %q", file.Name)
		}
		path := filepath.Join(dir, file.Name)
		if err := writeFile(path, file.Data); err != nil {
			return nil, err
		}
		b.logger.Debug().
			Str("target", target.Name()).
			Str("style", file.Style.String()).
			Str("path", path).
			Str("size", humanize.Bytes(uint64(len(file.Data)))).
			Msg("wrote artifact")
		artifacts = append(artifacts, Artifact{
			Target: target.Name(),
			Style:  file.Style,
			Path:   path,
			Size:   int64(len(file.Data)),
		})
	}
	return artifacts, nil
}

// writeFile replaces path atomically so editors watching the theme never
// read a partial file.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
