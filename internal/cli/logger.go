package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger for the CLI paths. The comparison core
// itself never logs; only loading, persistence and rendering do.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
