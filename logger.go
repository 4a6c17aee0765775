package main

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger returns a logger writing to a rotated file when debugging is
// enabled. The screen belongs to the viewer, so there is no terminal sink.
// The returned closer must be closed on exit.
func newLogger(cfg Config) (*log.Logger, io.Closer) {
	if !cfg.Debug {
		return log.New(io.Discard, "", 0), nopCloser{}
	}

	out := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5,  // Megabytes before it rotates
		MaxBackups: 3,  // Keep only the 3 most recent old log files
		MaxAge:     28, // Days to keep logs
		Compress:   true,
	}
	return log.New(out, "orgview: ", log.LstdFlags), out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
