package app

import (
	"encoding/binary"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/capview/internal/capture"
)

func captureBytes(magic uint32, payloadLens ...int) []byte {
	buf := make([]byte, capture.FileHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	binary.LittleEndian.PutUint16(buf[4:6], capture.VersionMajor)
	binary.LittleEndian.PutUint16(buf[6:8], capture.VersionMinor)
	for i, n := range payloadLens {
		hdr := make([]byte, capture.RecordHeaderSize)
		binary.LittleEndian.PutUint32(hdr[0:4], uint32(i))
		binary.LittleEndian.PutUint32(hdr[8:12], uint32(n))
		binary.LittleEndian.PutUint32(hdr[12:16], 0xCAFE0000+uint32(i))
		buf = append(buf, hdr...)
		buf = append(buf, make([]byte, n)...)
	}
	return buf
}

func writeCapture(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.cap")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write capture: %v", err)
	}
	return path
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testOptions(path string) Options {
	opts := DefaultOptions()
	opts.Path = path
	opts.Debounce = 0
	return opts
}
