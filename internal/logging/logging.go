// Package logging holds the logrus logger shared by the rename tools.
package logging

import (
	"github.com/sirupsen/logrus"
	"io"
	"os"
)

// DefaultLogger is the base logger. Tools write their converted output to
// stdout, so logs always go to stderr.
var DefaultLogger = InitializeDefaultLogger()

// InitializeDefaultLogger returns a logger writing text logs to stderr at
// info level.
func InitializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// SetLogLevel sets the level of DefaultLogger.
func SetLogLevel(level logrus.Level) {
	DefaultLogger.SetLevel(level)
}

// SetupLogging configures DefaultLogger for a command run.
func SetupLogging(out io.Writer, debug bool) {
	if out != nil {
		DefaultLogger.SetOutput(out)
	}
	if debug {
		SetLogLevel(logrus.DebugLevel)
	} else {
		SetLogLevel(logrus.InfoLevel)
	}
}
