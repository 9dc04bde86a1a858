package logging

import (
	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. Unknown levels fall back
// to info rather than failing startup.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
