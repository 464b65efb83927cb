// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"marks/internal/cli"
	"marks/internal/cmdutil"
	"marks/internal/grades"
	"marks/internal/output"
	"marks/internal/roster"
	"marks/internal/version"
	"marks/internal/writers"
)

// User-facing diagnostics, printed on stdout.
const (
	NotFoundMessage     = "%s not found."
	GuardMessage        = "One or both files are empty or missing."
	WriteFailureMessage = "Error writing to %s."
)

// Config drives one run.
type Config struct {
	Students    string
	Assignments string
	Output      string
	Format      string
	Summary     bool
	// Quiet drops warnings about empty rosters, read errors and write failures.
	Quiet bool

	// Sampler draws scores; nil means a fresh entropy-seeded normal sampler.
	Sampler grades.Sampler
	// RunID tags logs and JSON sheets; empty means a new UUIDv4.
	RunID string
}

// ConfigFromOptions maps parsed flags onto a run configuration.
func ConfigFromOptions(o cli.Options) Config {
	return Config{
		Students:    o.Students,
		Assignments: o.Assignments,
		Output:      o.Output,
		Format:      o.Format,
		Summary:     o.Summary,
		Quiet:       o.Quiet,
	}
}

// Report describes what a run did.
type Report struct {
	RunID  string
	Halted bool          // guard stopped the run before generating
	Table  *grades.Table // nil when Halted
	// WriteErr is the reported output failure, if any. It does not fail the run.
	WriteErr error
}

// Execute loads both rosters, applies the empty-input guard, generates the
// table, prints it and writes the sheet file. Missing inputs and output
// failures are reported on stdout and do not return an error; only a
// cancelled context or a failing stdout does.
func Execute(ctx context.Context, cfg Config, stdout io.Writer, log logrus.FieldLogger) (Report, error) {
	rep := Report{RunID: cfg.RunID}
	if rep.RunID == "" {
		rep.RunID = newRunID()
	}
	log = log.WithField("run_id", rep.RunID)

	students, err := loadRoster(cfg.Students, stdout, log, cfg.Quiet)
	if err != nil {
		return rep, err
	}
	assignments, err := loadRoster(cfg.Assignments, stdout, log, cfg.Quiet)
	if err != nil {
		return rep, err
	}

	if students.Empty() || assignments.Empty() {
		log.WithFields(logrus.Fields{"students": len(students), "assignments": len(assignments)}).
			Debug("empty input, stopping")
		rep.Halted = true
		_, err := fmt.Fprintln(stdout, GuardMessage)
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	sampler := cfg.Sampler
	if sampler == nil {
		sampler = grades.NewEntropySampler()
	}
	rep.Table = grades.Generate(students, assignments, sampler)
	log.WithFields(logrus.Fields{"rows": rep.Table.Len(), "width": rep.Table.Width()}).Debug("generated marks")

	if err := output.WriteConsole(stdout, rep.Table); err != nil {
		return rep, err
	}
	if cfg.Summary {
		if err := output.WriteSummary(stdout, output.Summarize(rep.Table)); err != nil {
			return rep, err
		}
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	flog := log.WithFields(logrus.Fields{"path": cfg.Output, "format": cfg.Format})
	sheet := output.Sheet{RunID: rep.RunID, Table: rep.Table}
	if werr := writers.WriteFile(cfg.Output, cfg.Format, sheet); werr != nil {
		if writers.IsWriteError(werr) {
			cmdutil.WarnWithContext(flog, cfg.Quiet, werr, "writing sheet")
		} else {
			// Unregistered format: Config did not come through cli.Validate.
			flog.Errorf("writing sheet: %v", werr)
		}
		rep.WriteErr = werr
		_, err := fmt.Fprintf(stdout, WriteFailureMessage+"\n", cfg.Output)
		return rep, err
	}
	flog.Debug("sheet written")
	return rep, nil
}

// loadRoster reads path. Any load failure is reported as not found and
// yields an empty list; the returned error is only a stdout failure.
func loadRoster(path string, stdout io.Writer, log logrus.FieldLogger, quiet bool) (roster.List, error) {
	plog := log.WithField("path", path)
	list, err := roster.Load(path)
	if err != nil {
		if roster.IsNotFound(err) {
			plog.Debugf("%+v", err)
		} else {
			cmdutil.WarnWithContext(plog, quiet, err, "reading roster")
		}
		_, werr := fmt.Fprintf(stdout, NotFoundMessage+"\n", path)
		return list, werr
	}
	if list.Empty() {
		cmdutil.Warnf(plog, quiet, "%s has no names after trimming blank lines", path)
	}
	plog.WithField("count", len(list)).Debug("loaded roster")
	return list, nil
}

func newRunID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}

// RunContext parses argv, runs once and returns the process exit code:
// 0 on success, guard halt or reported write failure; 2 on usage errors;
// 3 when stdout fails; 130 when cancelled.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	opts, err := cli.ParseArgs("marks", argv, outw)
	if err != nil {
		if c := errors.Cause(err); c == cli.ErrHelp || c == cli.ErrPrintedAndExitOK {
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return flush(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "marks version %s\n", version.Version)
		return flush(0)
	}

	log, err := cmdutil.NewLogger(opts.LogLevel, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return flush(2)
	}

	if _, err := Execute(ctx, ConfigFromOptions(opts), outw, log); err != nil {
		if ctx.Err() != nil {
			_ = outw.Flush()
			return 130
		}
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return flush(3)
	}
	return flush(0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
