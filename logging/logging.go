// Package logging sets up the logrus logger shared by the cb commands.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns a logger writing to stderr at the given level, so that logs
// never mix with the reports printed on stdout.
func Setup(level string) (*logrus.Logger, error) {
	return New(os.Stderr, level)
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := &logrus.Logger{
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks: make(logrus.LevelHooks),
		Out:   w,
		Level: lvl,
	}
	return logger, nil
}
