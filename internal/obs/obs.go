// Package obs configures the process-wide structured logger used by
// the binaries and service packages. The engine core reports game
// outcomes through EventSink instead (see internal/sink); its only log
// line is hit.Resolver's warning when the re-run iteration cap is hit.
package obs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// DefaultLevel is the level cmd/fretsim and cmd/flagserver start at.
const DefaultLevel = zerolog.InfoLevel

// Configure rewires the package logger: pretty console output for
// interactive use, or JSON lines for production/container deployments.
func Configure(level zerolog.Level, json bool) {
	var w io.Writer = os.Stderr
	if !json {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// L returns the process-wide logger, in the style the retrieval pack's
// service repos call it (log.L().Info().Msg(...)).
func L() *zerolog.Logger {
	return &logger
}
