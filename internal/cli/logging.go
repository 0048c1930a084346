package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func configureLogger(w io.Writer, level string, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)
}
