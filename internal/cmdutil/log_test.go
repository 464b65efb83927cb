package cmdutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewLogger(t *testing.T) {
	Convey("When building a logger", t, func() {
		var buf bytes.Buffer

		Convey("A valid level is applied", func() {
			log, err := NewLogger("debug", &buf)
			So(err, ShouldBeNil)
			So(log.GetLevel(), ShouldEqual, logrus.DebugLevel)
			log.Debug("hello")
			So(buf.String(), ShouldContainSubstring, "hello")
		})

		Convey("The default level hides warnings", func() {
			log, err := NewLogger(DefaultLogLevel, &buf)
			So(err, ShouldBeNil)
			Warnf(log, false, "careful %d", 1)
			So(WarnWithContext(log, false, errors.New("boom"), "ctx"), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("An invalid level is rejected", func() {
			_, err := NewLogger("loud", &buf)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "loud")
		})

		Convey("Timestamps carry milliseconds, not the month", func() {
			log, err := NewLogger("info", &buf)
			So(err, ShouldBeNil)
			f, ok := log.Formatter.(*logrus.TextFormatter)
			So(ok, ShouldBeTrue)
			So(f.TimestampFormat, ShouldEqual, TimestampLayout)

			ts := time.Date(2026, time.October, 19, 8, 11, 15, 123*int(time.Millisecond), time.UTC)
			So(ts.Format(TimestampLayout), ShouldEqual, "2026-10-19 08:11:15.123")
		})
	})
}

func TestWarnfQuiet(t *testing.T) {
	Convey("Quiet warnings are dropped", t, func() {
		var buf bytes.Buffer
		log, _ := NewLogger("warn", &buf)
		Warnf(log, true, "nope")
		So(buf.Len(), ShouldEqual, 0)
		Warnf(log, false, "yes")
		So(buf.String(), ShouldContainSubstring, "yes")
	})
}

func TestWarnWithContext(t *testing.T) {
	Convey("Errors are logged as warnings with context", t, func() {
		var buf bytes.Buffer
		log, _ := NewLogger("warn", &buf)
		So(WarnWithContext(log, false, nil, "ctx"), ShouldBeFalse)
		So(buf.Len(), ShouldEqual, 0)

		So(WarnWithContext(log, true, errors.New("boom"), "writing sheet"), ShouldBeTrue)
		So(buf.Len(), ShouldEqual, 0)

		So(WarnWithContext(log, false, errors.New("boom"), "writing sheet"), ShouldBeTrue)
		So(buf.String(), ShouldContainSubstring, "level=warning")
		So(buf.String(), ShouldContainSubstring, "writing sheet: boom")
	})
}
