// Package telemetry provides the structured logging side channel used by
// nanogit's repo operations. It never affects control flow: every function
// here only observes, and a caller that never reads logs can ignore the
// package entirely.
package telemetry

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Entry built on logrus's standard logger, so that
// callers who never configure a logger still get sensible output.
type Logger struct {
	entry *logrus.Entry
}

// New returns a Logger that tags every entry with the given repo name.
func New(repoName string) *Logger {
	return &Logger{entry: logrus.WithField("repo", repoName)}
}

// Op logs a completed mutating operation (commit_all, checkout, branch, ...)
// at debug level, along with whatever key/value context the caller supplies.
func (l *Logger) Op(operation string, fields map[string]any) {
	if l == nil {
		return
	}
	e := l.entry.WithField("op", operation)
	for k, v := range fields {
		e = e.WithField(k, v)
	}
	e.Debug(operation)
}

func location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf builds an error from format/args, logging it at error level with
// the caller's location attached, and returns it for the caller to bubble
// up. It never swallows the error itself.
func Errorf(format string, a ...any) error {
	fn, line := location(2)
	msg := fmt.Sprintf(format, a...)
	logrus.WithField("at", fmt.Sprintf("%s:%d", fn, line)).Error(msg)
	return errors.New(msg)
}
