// internal/cli/options.go
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"marks/internal/cmdutil"
	"marks/internal/output"
	"marks/internal/writers"
)

// ErrHelp is returned when --help was requested and usage has been written.
var ErrHelp = errors.New("help requested")

// ErrPrintedAndExitOK is returned when --examples was requested and the
// quickstart has been written.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Defaults reproduce the conventional file names.
const (
	DefaultStudents    = "students.txt"
	DefaultAssignments = "assignments.txt"
	DefaultOutput      = "marks.csv"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Students    string
	Assignments string

	// Output
	Output  string
	Format  string
	Summary bool

	// Misc
	Quiet    bool
	LogLevel string
	Version  bool
	Examples bool
}

// ParseArgs registers and parses all flags (with MARKS_* environment
// fallbacks) and validates the result. Usage goes to usage.
func ParseArgs(name string, argv []string, usage io.Writer) (Options, error) {
	var opt Options
	helped := false

	app := NewApp(name, usage)
	app.Terminate(func(int) { helped = true })

	app.Flag("students", "file with one student name per line").
		Envar(envName("students")).Default(DefaultStudents).StringVar(&opt.Students)
	app.Flag("assignments", "file with one assignment name per line").
		Envar(envName("assignments")).Default(DefaultAssignments).StringVar(&opt.Assignments)
	app.Flag("output", "destination sheet, overwritten on each run").
		Envar(envName("output")).Default(DefaultOutput).StringVar(&opt.Output)
	app.Flag("format", "sheet format: fixed | csv | tsv | json").
		Envar(envName("format")).Default(output.FormatFixed).StringVar(&opt.Format)
	app.Flag("summary", "print per-assignment statistics after the marks").
		Envar(envName("summary")).BoolVar(&opt.Summary)
	app.Flag("quiet", "suppress non-essential warnings").Short('q').
		Envar(envName("quiet")).BoolVar(&opt.Quiet)
	app.Flag("log", "log level: debug, info, warn, error, fatal, panic").
		Envar(envName("log")).Default(cmdutil.DefaultLogLevel).StringVar(&opt.LogLevel)
	app.Flag("version", "print version and exit").Short('v').BoolVar(&opt.Version)
	app.Flag("examples", "print usage examples and exit").BoolVar(&opt.Examples)

	if _, err := app.Parse(argv); err != nil {
		return opt, errors.Wrap(err, "could not parse command line flags")
	}
	if helped {
		return opt, ErrHelp
	}
	if opt.Examples {
		PrintExamples(usage, name)
		return opt, ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	return opt, Validate(opt)
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	if o.Students == "" {
		return errors.New("--students must not be empty")
	}
	if o.Assignments == "" {
		return errors.New("--assignments must not be empty")
	}
	if o.Output == "" {
		return errors.New("--output must not be empty")
	}
	if !writers.Known(o.Format) {
		return errors.Errorf("unknown sheet format %q", o.Format)
	}
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return errors.Errorf("invalid --log %q", o.LogLevel)
	}
	return nil
}
