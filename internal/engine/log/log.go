// Package log provides operator-facing structured logging for mtgkernel's
// glue layers (net, web, mcp, cmd). It is deliberately separate from the
// typed game event bus (internal/event): this package is for diagnosing a
// running process, not for driving game rules.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus.Logger with the fields mtgkernel's binaries
// consistently attach: turn, phase, player, component.
type Logger struct {
	*logrus.Logger
}

// New creates a text-formatted logger writing to stderr at Info level.
func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{l}
}

// Verbose raises the level to Debug, used when Config.Verbose is set.
func (l *Logger) Verbose() *Logger {
	l.SetLevel(logrus.DebugLevel)
	return l
}

// Component returns an entry pre-tagged with the component name, e.g.
// log.New().Component("net").Warn("connection dropped").
func (l *Logger) Component(name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Turn returns an entry tagged with turn/phase/player, for in-duel logging.
func (l *Logger) Turn(turn int, phase string, player int) *logrus.Entry {
	return l.WithFields(logrus.Fields{"turn": turn, "phase": phase, "player": player})
}
