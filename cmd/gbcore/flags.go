package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// levelFlag is a logrus.Level settable from the command line.
type levelFlag logrus.Level

var _ pflag.Value = (*levelFlag)(nil)

func (l *levelFlag) String() string {
	return logrus.Level(*l).String()
}

func (l *levelFlag) Set(s string) error {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return err
	}
	*l = levelFlag(level)
	return nil
}

func (l *levelFlag) Type() string {
	return "level"
}
