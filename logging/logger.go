package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// RootLogger is the parent of every component logger in the client.
// Diagnostics go to stderr so they never mix with the interactive menu
// output on stdout.
var RootLogger zerolog.Logger = zerolog.New(
	zerolog.NewConsoleWriter(
		func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr },
		func(w *zerolog.ConsoleWriter) { w.TimeFormat = "15:04:05.000" })).Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// SetLevel reconfigures the root logger level. Unknown level names keep
// the current level.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return
	}
	RootLogger = RootLogger.Level(lvl)
}
