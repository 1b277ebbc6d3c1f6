package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	l.ExitFunc = func(int) {}
	return l
}
