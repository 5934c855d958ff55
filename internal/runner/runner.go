// Package runner drives a patch pipeline over a directory tree: find the
// files in scope, transform each one in memory, and write back those that
// changed. Files are processed one at a time in a deterministic order.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jmylchreest/padpatch/internal/config"
	"github.com/jmylchreest/padpatch/internal/fsops"
	"github.com/jmylchreest/padpatch/internal/logger"
	"github.com/jmylchreest/padpatch/pkg/patch"
)

// Runner applies one transform to every file in a scope.
type Runner struct {
	name      string
	fs        *fsops.FS
	transform patch.Transform
	scope     config.Scope

	dryRun   bool
	diff     bool
	observer func(FileResult)
}

// Option configures a Runner.
type Option func(*Runner)

// WithDryRun reports changes without writing them.
func WithDryRun(enabled bool) Option {
	return func(r *Runner) {
		r.dryRun = enabled
	}
}

// WithDiff attaches a unified diff to every changed file result.
func WithDiff(enabled bool) Option {
	return func(r *Runner) {
		r.diff = enabled
	}
}

// WithObserver registers fn to be called after each changed file is handled.
func WithObserver(fn func(FileResult)) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// New creates a runner named name (used in reports) that applies t to the
// files of scope on fsys.
func New(name string, fsys *fsops.FS, t patch.Transform, scope config.Scope, opts ...Option) *Runner {
	r := &Runner{
		name:      name,
		fs:        fsys,
		transform: t,
		scope:     scope,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every file in scope. The first I/O error stops the run;
// files already written stay written. ctx is checked between files.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	log := logger.With("pipeline", r.name)

	summary := &Summary{
		Pipeline: r.name,
		DryRun:   r.dryRun,
		Files:    []FileResult{},
	}

	files, err := r.fs.Find(r.scope.Dirs, r.scope.Extensions)
	if err != nil {
		return summary, err
	}
	log.Debug("files in scope", "count", len(files), "transform", r.transform.Name())

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}
		if r.scope.Excludes(path) {
			log.Debug("file excluded", "path", path)
			continue
		}

		res, err := r.processFile(path)
		if err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}
		summary.Scanned++

		if !res.Changed {
			log.Debug("file unchanged", "path", path)
			continue
		}
		log.Debug("file changed", "path", path, "steps", res.Steps, "edits", res.Edits)

		summary.add(res)
		if r.observer != nil {
			r.observer(res)
		}
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

func (r *Runner) processFile(path string) (FileResult, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	before := string(data)
	out := r.transform.Apply(before)

	res := FileResult{
		Path:        path,
		Changed:     out.Changed,
		Steps:       out.Steps,
		Edits:       out.Edits,
		BytesBefore: int64(len(before)),
		BytesAfter:  int64(len(out.Text)),
	}
	if !out.Changed {
		return res, nil
	}

	if r.diff {
		res.Diff, err = unifiedDiff(path, before, out.Text)
		if err != nil {
			return res, fmt.Errorf("failed to diff %s: %w", path, err)
		}
	}

	if r.dryRun {
		return res, nil
	}
	if err := r.fs.AtomicWrite(path, []byte(out.Text)); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}
	res.Written = true
	return res, nil
}

func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}
