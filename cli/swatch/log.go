package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the console logger commands report through. The verbose
// flag lowers the level to debug, alongside the tracing targets enabled in
// cmd.setup.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", bin).
		Logger()
}
