// Package capture decodes the fixed capture layout: a 16-byte file header
// followed by records made of a 16-byte header and a payload.
package capture

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrTruncatedHeader is returned when fewer than FileHeaderSize bytes exist.
	ErrTruncatedHeader = errors.New("truncated file header")

	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// Capture is the decoded view of a buffer. It never owns payload bytes.
type Capture struct {
	Header  FileHeader
	Records []Record
	// Size is the length of the parsed buffer.
	Size int
}

// Parse decodes the file header and greedily decodes records until the
// buffer runs out. An incomplete trailing record is left out of Records.
func Parse(buf []byte) (*Capture, error) {
	if len(buf) < FileHeaderSize {
		return nil, fmt.Errorf("%w: have %d of %d bytes", ErrTruncatedHeader, len(buf), FileHeaderSize)
	}

	c := &Capture{
		Header: decodeFileHeader(buf[:FileHeaderSize]),
		Size:   len(buf),
	}

	offset := FileHeaderSize
	for len(buf)-offset >= RecordHeaderSize {
		header := decodeRecordHeader(buf[offset : offset+RecordHeaderSize])
		remaining := uint64(len(buf) - offset - RecordHeaderSize)
		if uint64(header.PayloadLength) > remaining {
			break
		}
		c.Records = append(c.Records, Record{Header: header, Start: offset})
		offset += RecordHeaderSize + int(header.PayloadLength)
	}

	return c, nil
}

// ReadFile loads the whole file and parses it. The raw bytes are returned so
// callers can render them without a second read.
func ReadFile(path string) (*Capture, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read capture %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse capture %s: %w", path, err)
	}
	return c, data, nil
}

// Validate is the strict check: it rejects headers whose magic or version
// does not match. Parse itself never does.
func (c *Capture) Validate() error {
	var errs []error
	if !c.Header.MagicValid() {
		errs = append(errs, fmt.Errorf("%w: 0x%08X", ErrInvalidMagic, c.Header.Magic))
	}
	if !c.Header.VersionValid() {
		errs = append(errs, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, c.Header.Major, c.Header.Minor))
	}
	return errors.Join(errs...)
}

// ParsedEnd is the offset just past the last decoded record.
func (c *Capture) ParsedEnd() int {
	if len(c.Records) == 0 {
		return FileHeaderSize
	}
	return c.Records[len(c.Records)-1].End()
}

// TrailingBytes counts bytes after the last decoded record.
func (c *Capture) TrailingBytes() int {
	if n := c.Size - c.ParsedEnd(); n > 0 {
		return n
	}
	return 0
}
