// Package logger configures the zerolog JSON logger shared by every component.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w at the given level.
// Unknown levels fall back to info with a warning on stderr.
func New(level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "ts"

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		if level != "" {
			fmt.Fprintf(os.Stderr, "invalid log level %q, defaulting to info\n", level)
		}
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &l
	return l
}

// Nop returns a disabled logger, used where no logger was injected.
func Nop() zerolog.Logger { return zerolog.Nop() }
