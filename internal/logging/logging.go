package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel keeps normal runs quiet.
const DefaultLevel = "warn"

// New returns a logger writing text lines to w. An unknown level falls back
// to DefaultLevel and is reported on the logger itself.
func New(w io.Writer, level string) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	l.SetLevel(log.WarnLevel)
	if level == "" {
		return l
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.Warnf("invalid log level %s, defaulting to %s", level, DefaultLevel)
	}
	return l
}
