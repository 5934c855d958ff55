package commands

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/padpatch/internal/config"
	"github.com/jmylchreest/padpatch/internal/fsops"
	"github.com/jmylchreest/padpatch/internal/logger"
	"github.com/jmylchreest/padpatch/internal/output"
	"github.com/jmylchreest/padpatch/internal/runner"
	"github.com/jmylchreest/padpatch/pkg/patch"
)

// pipeline describes how a subcommand reports its run.
type pipeline struct {
	name  string // "patch" or "clean"
	verb  string // past tense for per-file lines, e.g. "Patched"
	total string // label of the final count line
	scope func(*config.Config) config.Scope
	build func(*config.Config) (patch.Transform, error)
}

// addPipelineFlags registers the flags shared by patch and clean.
func addPipelineFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceP("dir", "d", nil, "directory to scan, relative to the root (can be repeated; replaces configured dirs)")
	flags.StringSlice("ext", nil, "file extension to include (can be repeated; replaces configured extensions)")
	flags.StringSlice("exclude", nil, `glob of paths to skip, e.g. "**/_layout.tsx" (can be repeated; replaces configured excludes)`)
	flags.BoolP("dry-run", "n", false, "report changes without writing files")
	flags.Bool("diff", false, "print a unified diff for each changed file")
	flags.StringP("format", "f", "text", "report format: text, json, jsonl, yaml")
}

func (a *app) runPipeline(cmd *cobra.Command, p pipeline) error {
	flags := cmd.Flags()
	dryRun, _ := flags.GetBool("dry-run")
	showDiff, _ := flags.GetBool("diff")
	formatName, _ := flags.GetString("format")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	scope := p.scope(a.cfg)
	if flags.Changed("dir") {
		scope.Dirs, _ = flags.GetStringSlice("dir")
	}
	if flags.Changed("ext") {
		scope.Extensions, _ = flags.GetStringSlice("ext")
	}
	if flags.Changed("exclude") {
		scope.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if err := config.ValidateScope(scope); err != nil {
		return fmt.Errorf("invalid %s scope: %w", p.name, err)
	}

	transform, err := p.build(a.cfg)
	if err != nil {
		return err
	}

	fsys, err := fsops.NewOS(a.cfg.Root)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	out := cmd.OutOrStdout()
	rep, err := newReporter(out, format, p, dryRun)
	if err != nil {
		return err
	}

	logger.Debug("starting run",
		"pipeline", p.name,
		"transform", transform.Name(),
		"root", a.cfg.Root,
		"dirs", scope.Dirs,
		"extensions", scope.Extensions,
		"exclude", scope.Exclude,
		"dry_run", dryRun,
	)

	r := runner.New(p.name, fsys, transform, scope,
		runner.WithDryRun(dryRun),
		runner.WithDiff(showDiff),
		runner.WithObserver(rep.file),
	)
	summary, runErr := r.Run(ctx)
	if summary != nil {
		logger.Info(summary.String())
	}
	if runErr != nil {
		return runErr
	}
	return rep.finish(summary)
}

// reporter renders per-file results and the final summary in one format.
type reporter struct {
	out    io.Writer
	format output.Format
	p      pipeline
	dryRun bool
	stream output.Writer
	err    error
}

func newReporter(out io.Writer, format output.Format, p pipeline, dryRun bool) (*reporter, error) {
	rep := &reporter{out: out, format: format, p: p, dryRun: dryRun}
	if format.Streaming() {
		w, err := output.NewWriter(out, format)
		if err != nil {
			return nil, err
		}
		rep.stream = w
	}
	return rep, nil
}

func (r *reporter) file(res runner.FileResult) {
	switch {
	case r.stream != nil:
		if err := r.stream.Write(res); err != nil && r.err == nil {
			r.err = err
		}
	case r.format.Structured():
		// Collected in the summary document.
	default:
		if r.dryRun {
			printPending(r.out, fmt.Sprintf("Would %s %s", r.p.name, res.DisplayPath()))
		} else {
			printSuccess(r.out, fmt.Sprintf("%s %s", r.p.verb, res.DisplayPath()))
		}
		if res.Diff != "" {
			printDiff(r.out, res.Diff)
		}
	}
}

func (r *reporter) finish(s *runner.Summary) error {
	if r.err != nil {
		return fmt.Errorf("failed to write report: %w", r.err)
	}
	if r.stream != nil {
		return r.stream.Close()
	}
	if r.format.Structured() {
		w, err := output.NewWriter(r.out, r.format)
		if err != nil {
			return err
		}
		if err := w.Write(s); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return w.Close()
	}

	_, _ = fmt.Fprintln(r.out)
	if r.dryRun {
		printPending(r.out, fmt.Sprintf("%s (dry run): %d", r.p.total, s.Changed))
		return nil
	}
	printSuccess(r.out, fmt.Sprintf("%s: %d", r.p.total, s.Changed))
	return nil
}
