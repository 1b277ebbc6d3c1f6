package log

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Logger is the logging interface used throughout the emulator. It is
// satisfied by *logrus.Logger.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Fatal(args ...interface{})

	WithFields(fields logrus.Fields) *logrus.Entry
	IsLevelEnabled(level logrus.Level) bool
}

// New returns a Logger writing to stderr at the given level. Colours are
// only used when stderr is a terminal.
func New(level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
