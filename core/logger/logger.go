package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init sets the global level and, for local development, a console writer.
func Init(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
}

func Info(msg string, args ...any) {
	emit(log.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	emit(log.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	emit(log.Error(), msg, args)
}

// emit accepts either a single error or alternating key/value pairs.
func emit(ev *zerolog.Event, msg string, args []any) {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			ev.Err(err).Msg(msg)
			return
		}
		ev.Interface("detail", args[0]).Msg(msg)
		return
	}

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		if err, isErr := args[i+1].(error); isErr {
			ev.AnErr(key, err)
			continue
		}
		ev.Interface(key, args[i+1])
	}
	ev.Msg(msg)
}
