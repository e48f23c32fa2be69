package capture

import (
	"encoding/binary"
	"time"
)

const (
	// FileHeaderSize is the size of the header at the start of every capture.
	FileHeaderSize = 16
	// RecordHeaderSize is the size of the header in front of each payload.
	RecordHeaderSize = 16

	// Magic is the expected little-endian magic number.
	Magic uint32 = 0xD4C3B2A1
	// VersionMajor and VersionMinor identify the only supported layout.
	VersionMajor uint16 = 2
	VersionMinor uint16 = 4
)

// FileHeader mirrors the 16-byte header at offset 0.
type FileHeader struct {
	Magic             uint32
	Major             uint16
	Minor             uint16
	TimezoneOffset    uint32
	TimestampAccuracy uint32
}

func (h FileHeader) MagicValid() bool {
	return h.Magic == Magic
}

func (h FileHeader) VersionValid() bool {
	return h.Major == VersionMajor && h.Minor == VersionMinor
}

// Valid reports whether both the magic and the version match.
func (h FileHeader) Valid() bool {
	return h.MagicValid() && h.VersionValid()
}

// RecordHeader precedes every payload.
type RecordHeader struct {
	TimestampSeconds     uint32
	TimestampNanoseconds uint32
	PayloadLength        uint32
	Checksum             uint32
}

// Time converts the record timestamp to UTC. The second result is false when
// the nanosecond field is out of range.
func (h RecordHeader) Time() (time.Time, bool) {
	if h.TimestampNanoseconds >= uint32(time.Second) {
		return time.Time{}, false
	}
	return time.Unix(int64(h.TimestampSeconds), int64(h.TimestampNanoseconds)).UTC(), true
}

// Record is a decoded record. Start is the absolute offset of its header.
type Record struct {
	Header RecordHeader
	Start  int
}

func (r Record) PayloadStart() int {
	return r.Start + RecordHeaderSize
}

// End returns the offset just past the payload.
func (r Record) End() int {
	return r.PayloadStart() + int(r.Header.PayloadLength)
}

func decodeFileHeader(b []byte) FileHeader {
	_ = b[FileHeaderSize-1]
	return FileHeader{
		Magic:             binary.LittleEndian.Uint32(b[0:4]),
		Major:             binary.LittleEndian.Uint16(b[4:6]),
		Minor:             binary.LittleEndian.Uint16(b[6:8]),
		TimezoneOffset:    binary.LittleEndian.Uint32(b[8:12]),
		TimestampAccuracy: binary.LittleEndian.Uint32(b[12:16]),
	}
}

func decodeRecordHeader(b []byte) RecordHeader {
	_ = b[RecordHeaderSize-1]
	return RecordHeader{
		TimestampSeconds:     binary.LittleEndian.Uint32(b[0:4]),
		TimestampNanoseconds: binary.LittleEndian.Uint32(b[4:8]),
		PayloadLength:        binary.LittleEndian.Uint32(b[8:12]),
		Checksum:             binary.LittleEndian.Uint32(b[12:16]),
	}
}
