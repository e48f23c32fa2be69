package app

import (
	"io"
	"log"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger writing to path. An empty path discards all
// output; the terminal belongs to the viewer so nothing is logged to stderr.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "capview: ", log.LstdFlags|log.Lmicroseconds), f, nil
}
