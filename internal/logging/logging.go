// Package logging provides the shared structured logger for rpgcore.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable immediately; Init
// reconfigures it from the environment.
var Log = logrus.New()

// Init configures the logger from environment variables:
//   - LOG_LEVEL: debug, info, warn, error (default info)
//   - LOG_FORMAT: "json" for machine-readable output, anything else for text
//   - LOG_FILE: path to append logs to; stderr when unset
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.WithError(err).Warn("Could not open LOG_FILE, logging to stderr")
			return
		}
		Log.SetOutput(f)
	}
}

// Discard silences the logger. Used by tests and by the terminal UI, which
// cannot share the screen with log output.
func Discard() {
	Log.SetOutput(io.Discard)
}
