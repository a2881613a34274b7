// Package logx wraps the global zerolog logger used by every service.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Production bool
	Level      string
	Output     io.Writer
}

func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.DebugLevel
		if opts.Production {
			lvl = zerolog.InfoLevel
		}
	}
	if opts.Production {
		log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(lvl)
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Caller().Logger().Level(lvl)
}

// Discard silences all output; tests call it from init.
func Discard() {
	log.Logger = zerolog.New(io.Discard)
}

func Debug() *zerolog.Event { return log.Debug() }

func Info() *zerolog.Event { return log.Info() }

func Warn() *zerolog.Event { return log.Warn() }

func Error() *zerolog.Event { return log.Error() }

func Fatal() *zerolog.Event { return log.Fatal() }
