package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func New(level string) zerolog.Logger {
	return NewWithOutput(level, os.Stderr)
}

func NewWithOutput(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
