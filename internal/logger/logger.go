// Package logger configures the diagnostic logger for the escala CLI.
//
// Logs are written with logrus to stderr so stdout carries only the schedule
// listing. Structured fields are attached with logrus.Fields:
//
//	log.WithFields(logger.Fields{
//	    "count": 2,
//	    "items": 7,
//	}).Debug("selected upcoming events")
package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Fields represents structured log fields
type Fields = logrus.Fields

// New creates a logger writing to output at the given level
// ("debug", "info", "warn", "error").
func New(level string, output io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetOutput(output)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	return log, nil
}

// Discard returns a logger that drops every entry
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
