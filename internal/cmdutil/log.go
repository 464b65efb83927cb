// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultLogLevel keeps normal runs silent on stderr.
const DefaultLogLevel = "error"

// TimestampLayout is the log timestamp with milliseconds.
const TimestampLayout = "2006-01-02 15:04:05.000"

// NewLogger builds a text logger writing to dst at the given level.
func NewLogger(level string, dst io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	log := logrus.New()
	log.SetOutput(dst)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampLayout})
	return log, nil
}

// Warnf logs a warning unless quiet is set.
func Warnf(log logrus.FieldLogger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	log.Warnf(format, a...)
}

// WarnWithContext logs err with its stack at debug level and a one-line
// warning (unless quiet). It reports whether err was non-nil.
func WarnWithContext(log logrus.FieldLogger, quiet bool, err error, context string) bool {
	if err == nil {
		return false
	}
	log.Debugf("%s: %+v", context, err)
	Warnf(log, quiet, "%s: %v", context, err)
	return true
}
