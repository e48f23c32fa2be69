package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/capview/internal/capture"
	"github.com/kk-code-lab/capview/internal/hexview"
)

func loadTestDocument(t *testing.T, data []byte) *hexview.Document {
	t.Helper()
	doc, err := LoadDocument(testOptions(writeCapture(t, data)), discardLogger())
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	return doc
}

func TestDumpWholeFile(t *testing.T) {
	doc := loadTestDocument(t, captureBytes(capture.Magic, 4))

	var buf bytes.Buffer
	if err := Dump(&buf, doc, 0, 0); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], " MAGIC: 0xD4C3B2A1 VER: 2.4 TZ: 0 TS_ACC: 0") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	want := " #1 TIME: 1970-01-01T00:00:00.000000000 LEN: 4 CRC: 0xCAFE0000"
	if !strings.HasSuffix(lines[1], want) {
		t.Fatalf("line 1 = %q, want suffix %q", lines[1], want)
	}
	if !strings.HasPrefix(lines[2], "00000020: 00 00 00 00") {
		t.Fatalf("line 2 = %q", lines[2])
	}
}

func TestDumpMarksInvalidHeaderValues(t *testing.T) {
	doc := loadTestDocument(t, captureBytes(0x12345678))

	var buf bytes.Buffer
	if err := Dump(&buf, doc, 0, 0); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(buf.String(), "MAGIC: 0x12345678! VER: 2.4 ") {
		t.Fatalf("invalid magic not marked: %q", buf.String())
	}
}

func TestDumpOffsetAndLimit(t *testing.T) {
	doc := loadTestDocument(t, captureBytes(capture.Magic, 40, 40))

	var buf bytes.Buffer
	if err := Dump(&buf, doc, 17, 2); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "00000010:") || !strings.HasPrefix(lines[1], "00000020:") {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestDumpOffsetPastEnd(t *testing.T) {
	doc := loadTestDocument(t, captureBytes(capture.Magic))

	var buf bytes.Buffer
	if err := Dump(&buf, doc, 1<<20, 0); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestWriteInfo(t *testing.T) {
	data := append(captureBytes(capture.Magic, 4, 8, 2), 0xEE, 0xEE)
	doc := loadTestDocument(t, data)

	var buf bytes.Buffer
	if err := WriteInfo(&buf, doc, "sample.cap", 1); err != nil {
		t.Fatalf("WriteInfo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"file:       sample.cap\n",
		"magic:      0xD4C3B2A1\n",
		"version:    2.4\n",
		"records:    3\n",
		"trailing:   2 bytes at 0x0000004E\n",
		"#1      0x00000010  1970-01-01T00:00:00.000000000  len 4  crc 0xCAFE0000\n",
		"... and 2 more\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteInfoFlagsInvalidHeader(t *testing.T) {
	doc := loadTestDocument(t, captureBytes(0))

	var buf bytes.Buffer
	if err := WriteInfo(&buf, doc, "bad.cap", 10); err != nil {
		t.Fatalf("WriteInfo: %v", err)
	}
	if !strings.Contains(buf.String(), "magic:      0x00000000 (invalid)\n") {
		t.Fatalf("invalid magic not flagged:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "more") {
		t.Fatalf("unexpected overflow line:\n%s", buf.String())
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closer, err := NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Printf("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewLoggerAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capview.log")
	for _, msg := range []string{"first", "second"} {
		logger, closer, err := NewLogger(path)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		logger.Printf("%s", msg)
		_ = closer.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Count(out, "capview: ") != 2 || !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("unexpected log contents %q", out)
	}
}
