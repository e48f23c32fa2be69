// Package hexview turns byte windows of a capture into annotated hex dump
// lines. It knows nothing about terminals; every piece of a line carries the
// region or role it belongs to and the caller picks colours.
package hexview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-code-lab/capview/internal/capture"
)

const (
	DefaultBytesPerLine = 16
	DefaultGroupSize    = 8
)

// Config is the rendering configuration fixed at construction time.
type Config struct {
	BytesPerLine int
	// GroupSize inserts an extra space every GroupSize bytes. Zero disables it.
	GroupSize int
	ShowASCII bool
}

func DefaultConfig() Config {
	return Config{
		BytesPerLine: DefaultBytesPerLine,
		GroupSize:    DefaultGroupSize,
		ShowASCII:    true,
	}
}

// Role tags annotation segments.
type Role int

const (
	RoleLabel Role = iota
	RoleValue
	RoleValid
	RoleInvalid
	RoleWarning
)

// Segment is a chunk of annotation text.
type Segment struct {
	Text string
	Role Role
}

// Cell is one byte slot of the hex column.
type Cell struct {
	Byte byte
	Kind capture.RegionKind
	// Pad marks slots past the end of the data; they are never classified.
	Pad bool
}

// Line is one rendered logical line.
type Line struct {
	Offset     int
	Cells      []Cell
	Annotation []Segment

	groupSize int
	showASCII bool
}

// Renderer renders lines for a single parsed capture.
type Renderer struct {
	cfg     Config
	capture *capture.Capture
	index   *capture.Index
}

func NewRenderer(cfg Config, c *capture.Capture) *Renderer {
	if cfg.BytesPerLine <= 0 {
		cfg.BytesPerLine = DefaultBytesPerLine
	}
	if cfg.GroupSize < 0 {
		cfg.GroupSize = 0
	}
	return &Renderer{
		cfg:     cfg,
		capture: c,
		index:   capture.NewIndex(c.Records),
	}
}

func (r *Renderer) Config() Config {
	return r.cfg
}

// RenderLine classifies every byte of data, which starts at the absolute
// offset, and attaches annotations for regions that open on this line.
func (r *Renderer) RenderLine(offset int, data []byte) Line {
	if len(data) > r.cfg.BytesPerLine {
		data = data[:r.cfg.BytesPerLine]
	}

	line := Line{
		Offset:    offset,
		Cells:     make([]Cell, r.cfg.BytesPerLine),
		groupSize: r.cfg.GroupSize,
		showASCII: r.cfg.ShowASCII,
	}
	for i := range line.Cells {
		if i >= len(data) {
			line.Cells[i] = Cell{Pad: true}
			continue
		}
		line.Cells[i] = Cell{
			Byte: data[i],
			Kind: r.index.Classify(offset + i).Kind,
		}
	}

	if len(data) == 0 {
		return line
	}
	end := offset + len(data)

	if offset == 0 {
		line.Annotation = append(line.Annotation, fileHeaderAnnotation(r.capture.Header)...)
	}
	records := r.index.Records()
	for _, i := range r.index.RecordsStartingIn(offset, end) {
		line.Annotation = append(line.Annotation, recordAnnotation(i, records[i].Header)...)
	}
	if trailing := r.capture.TrailingBytes(); trailing > 0 {
		if start := r.capture.ParsedEnd(); start >= offset && start < end {
			line.Annotation = append(line.Annotation,
				Segment{Text: " TRAILING: ", Role: RoleWarning},
				Segment{Text: fmt.Sprintf("%d bytes not decoded", trailing), Role: RoleWarning},
			)
		}
	}
	return line
}

func fileHeaderAnnotation(h capture.FileHeader) []Segment {
	magicRole, versionRole := RoleValid, RoleValid
	if !h.MagicValid() {
		magicRole = RoleInvalid
	}
	if !h.VersionValid() {
		versionRole = RoleInvalid
	}
	return []Segment{
		{Text: " MAGIC: ", Role: RoleLabel},
		{Text: fmt.Sprintf("0x%08X", h.Magic), Role: magicRole},
		{Text: " VER: ", Role: RoleLabel},
		{Text: fmt.Sprintf("%d.%d", h.Major, h.Minor), Role: versionRole},
		{Text: " TZ: ", Role: RoleLabel},
		{Text: strconv.FormatUint(uint64(h.TimezoneOffset), 10), Role: RoleValue},
		{Text: " TS_ACC: ", Role: RoleLabel},
		{Text: strconv.FormatUint(uint64(h.TimestampAccuracy), 10), Role: RoleValue},
	}
}

func recordAnnotation(index int, h capture.RecordHeader) []Segment {
	tsRole := RoleValue
	ts, ok := FormatTimestamp(h.TimestampSeconds, h.TimestampNanoseconds)
	if !ok {
		tsRole = RoleInvalid
	}
	return []Segment{
		{Text: fmt.Sprintf(" #%d", index+1), Role: RoleLabel},
		{Text: " TIME: ", Role: RoleLabel},
		{Text: ts, Role: tsRole},
		{Text: " LEN: ", Role: RoleLabel},
		{Text: strconv.FormatUint(uint64(h.PayloadLength), 10), Role: RoleValue},
		{Text: " CRC: ", Role: RoleLabel},
		{Text: fmt.Sprintf("0x%08X", h.Checksum), Role: RoleValue},
	}
}

// FormatTimestamp renders seconds/nanoseconds as an ISO-8601 UTC time with
// nanosecond precision. Unrepresentable values become INVALID_TS(s,ns).
func FormatTimestamp(seconds, nanoseconds uint32) (string, bool) {
	ts, ok := capture.RecordHeader{TimestampSeconds: seconds, TimestampNanoseconds: nanoseconds}.Time()
	if !ok {
		return fmt.Sprintf("INVALID_TS(%d,%d)", seconds, nanoseconds), false
	}
	return ts.Format("2006-01-02T15:04:05") + fmt.Sprintf(".%09d", nanoseconds), true
}

// PrintableASCII maps bytes outside [32,126] to '.'.
func PrintableASCII(b byte) byte {
	if b >= 32 && b <= 126 {
		return b
	}
	return '.'
}

// AnnotationText joins the annotation segments.
func (l Line) AnnotationText() string {
	var b strings.Builder
	for _, seg := range l.Annotation {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Text renders the line without styling. With markInvalid set, values
// flagged invalid are followed by '!'.
func (l Line) Text(markInvalid bool) string {
	var b strings.Builder
	b.Grow(len(l.Cells)*4 + 64)
	for _, p := range l.Pieces() {
		b.WriteString(p.Text)
		if markInvalid && p.Part == PartAnnotation && p.Role == RoleInvalid {
			b.WriteByte('!')
		}
	}
	return b.String()
}
