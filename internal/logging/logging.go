// Package logging configures the logrus standard logger.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Setup sets the output, level and format of the standard logger. An
// unknown level falls back to info.
func Setup(w io.Writer, level string, json bool) {
	log.SetOutput(w)

	if json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)

	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
	}
}
