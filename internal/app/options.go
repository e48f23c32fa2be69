package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/kk-code-lab/capview/internal/hexview"
)

const (
	MaxBytesPerLine = 256
	DefaultDebounce = 150 * time.Millisecond
)

// Options collects everything the CLI front-end decides before the viewer
// starts.
type Options struct {
	Path         string
	BytesPerLine int
	ShowASCII    bool
	Color        bool
	// Strict rejects captures whose magic or version does not match.
	Strict bool
	// StartOffset is a byte offset; the viewer opens on the line holding it.
	StartOffset int
	Debounce    time.Duration
}

func DefaultOptions() Options {
	return Options{
		BytesPerLine: hexview.DefaultBytesPerLine,
		ShowASCII:    true,
		Color:        true,
		Debounce:     DefaultDebounce,
	}
}

func (o Options) Validate() error {
	if o.Path == "" {
		return errors.New("no capture file given")
	}
	if o.BytesPerLine < 1 || o.BytesPerLine > MaxBytesPerLine {
		return fmt.Errorf("bytes per line must be between 1 and %d, got %d", MaxBytesPerLine, o.BytesPerLine)
	}
	if o.StartOffset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", o.StartOffset)
	}
	if o.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", o.Debounce)
	}
	return nil
}

// HexConfig is the line renderer configuration derived from the options.
func (o Options) HexConfig() hexview.Config {
	cfg := hexview.DefaultConfig()
	cfg.BytesPerLine = o.BytesPerLine
	cfg.ShowASCII = o.ShowASCII
	return cfg
}
