package main

import (
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/roadmap/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds a text logger at c.Level. Output goes to stderr unless
// c.File is set, in which case it is written to a rotating log file.
// The returned closer releases the file.
func newLogger(c config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	w := stderr
	var closer io.Closer = nopCloser{}
	if c.File != "" {
		l := &lumberjack.Logger{
			Filename: c.File,
			MaxSize:  c.MaxSizeMB, // megabytes
			MaxAge:   c.MaxAgeDays,
		}
		w, closer = l, l
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h), closer, nil
}
