package app

import (
	"fmt"
	"log"

	"github.com/kk-code-lab/capview/internal/capture"
	"github.com/kk-code-lab/capview/internal/hexview"
)

// LoadDocument reads and parses the capture named by opts.Path.
func LoadDocument(opts Options, logger *log.Logger) (*hexview.Document, error) {
	c, data, err := capture.ReadFile(opts.Path)
	if err != nil {
		return nil, err
	}

	logger.Printf("opened %s: %d bytes, %d records, %d trailing bytes",
		opts.Path, c.Size, len(c.Records), c.TrailingBytes())

	if err := c.Validate(); err != nil {
		if opts.Strict {
			return nil, fmt.Errorf("%s: %w", opts.Path, err)
		}
		logger.Printf("header warning: %v", err)
	}

	return hexview.NewDocument(opts.HexConfig(), c, data), nil
}
