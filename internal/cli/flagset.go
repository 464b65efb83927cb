package cli

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"marks/internal/version"
)

// EnvPrefix prefixes the environment variable that can set each flag.
const EnvPrefix = "MARKS"

// NewApp returns a kingpin application that never exits the process and
// writes usage and errors to out.
func NewApp(name string, out io.Writer) *kingpin.Application {
	app := kingpin.New(name, fmt.Sprintf(
		`%s: synthetic grade sheet generator

Reads one student name per line and one assignment name per line, draws a
score for every pair from N(75, 10), clamps it to [0, 100], prints the sheet
and writes it to a file.

Version: %s`, name, version.Version))
	app.UsageWriter(out)
	app.ErrorWriter(out)
	return app
}

// envName turns a flag name into its environment variable, e.g.
// "students" → "MARKS_STUDENTS".
func envName(flag string) string {
	return fmt.Sprintf("%s_%s", EnvPrefix, strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}
