// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zerolog logger the CLI and engine share.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-format logger writing to w. With verbose set the
// level drops to debug, which surfaces per-source fetch results; the
// default level only reports warnings and errors so the table output
// stays clean.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
