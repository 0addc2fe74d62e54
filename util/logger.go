package util

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. debug forces the debug level.
func NewLogger(out io.Writer, level string, debug bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if debug {
		lvl = logrus.DebugLevel
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}
