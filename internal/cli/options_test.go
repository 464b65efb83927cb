// internal/cli/options_test.go
package cli

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func parse(args ...string) (Options, string, error) {
	var usage bytes.Buffer
	o, err := ParseArgs("marks", args, &usage)
	return o, usage.String(), err
}

func TestParseArgs(t *testing.T) {
	Convey("While parsing marks flags", t, func() {
		for _, f := range []string{"students", "assignments", "output", "format", "summary", "quiet", "log"} {
			t.Setenv(envName(f), "")
		}

		Convey("No arguments gives the conventional defaults", func() {
			o, _, err := parse()
			So(err, ShouldBeNil)
			So(o.Students, ShouldEqual, "students.txt")
			So(o.Assignments, ShouldEqual, "assignments.txt")
			So(o.Output, ShouldEqual, "marks.csv")
			So(o.Format, ShouldEqual, "fixed")
			So(o.Summary, ShouldBeFalse)
			So(o.Quiet, ShouldBeFalse)
			So(o.LogLevel, ShouldEqual, "error")
		})

		Convey("Flags override defaults", func() {
			o, _, err := parse("--students", "s.txt", "--assignments", "a.txt",
				"--output", "out.tsv", "--format", "tsv", "--summary", "--quiet", "--log", "debug")
			So(err, ShouldBeNil)
			So(o, ShouldResemble, Options{
				Students: "s.txt", Assignments: "a.txt", Output: "out.tsv",
				Format: "tsv", Summary: true, Quiet: true, LogLevel: "debug",
			})
		})

		Convey("Environment variables are used when flags are absent", func() {
			t.Setenv("MARKS_STUDENTS", "env-students.txt")
			t.Setenv("MARKS_FORMAT", "json")
			o, _, err := parse()
			So(err, ShouldBeNil)
			So(o.Students, ShouldEqual, "env-students.txt")
			So(o.Format, ShouldEqual, "json")

			Convey("But a flag still wins", func() {
				o, _, err := parse("--format", "csv")
				So(err, ShouldBeNil)
				So(o.Format, ShouldEqual, "csv")
			})
		})

		Convey("An unknown format is rejected", func() {
			_, _, err := parse("--format", "xlsx")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown sheet format")
		})

		Convey("An invalid log level is rejected", func() {
			_, _, err := parse("--log", "chatty")
			So(err, ShouldNotBeNil)
		})

		Convey("An empty path is rejected", func() {
			_, _, err := parse("--output", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown flags are an error", func() {
			_, _, err := parse("--bogus")
			So(err, ShouldNotBeNil)
		})

		Convey("Positional arguments are an error", func() {
			_, _, err := parse("extra.txt")
			So(err, ShouldNotBeNil)
		})

		Convey("Help writes usage and reports ErrHelp", func() {
			_, usage, err := parse("--help")
			So(err, ShouldEqual, ErrHelp)
			So(usage, ShouldContainSubstring, "--students")
		})

		Convey("Examples print a quickstart", func() {
			_, usage, err := parse("--examples")
			So(err, ShouldEqual, ErrPrintedAndExitOK)
			So(usage, ShouldContainSubstring, "quickstart")
			So(usage, ShouldContainSubstring, "--format csv")
		})

		Convey("Version skips validation", func() {
			o, _, err := parse("--version", "--format", "nope")
			So(err, ShouldBeNil)
			So(o.Version, ShouldBeTrue)
		})
	})
}

func TestEnvName(t *testing.T) {
	Convey("Flag names map to MARKS_ variables", t, func() {
		So(envName("students"), ShouldEqual, "MARKS_STUDENTS")
		So(envName("log-level"), ShouldEqual, "MARKS_LOG_LEVEL")
		So(envName("Mixed-Case"), ShouldEqual, "MARKS_MIXED_CASE")
	})
}
