package config

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger tagged with a component name, so each
// subsystem's lines are distinguishable in the combined output.
func NewLogger(component string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// SetLogLevel applies the global minimum log level. Unknown names are
// ignored and the current level kept.
func SetLogLevel(level string) {
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}
}
