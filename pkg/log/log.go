// Package log builds the logrus loggers used by the CLI and MCP server.
// Library packages (render, slug, tokenize) never log; diagnostics travel
// on the Result instead.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a configured logger writing to out. An unrecognized level
// falls back to info with a warning rather than failing startup.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.Warnf("Invalid log level '%s', using default 'info'", level)
		return logger
	}
	logger.SetLevel(parsed)
	return logger
}
