package hexview

import "github.com/kk-code-lab/capview/internal/capture"

// Document is the logical line view of a capture buffer.
type Document struct {
	data     []byte
	capture  *capture.Capture
	renderer *Renderer
}

func NewDocument(cfg Config, c *capture.Capture, data []byte) *Document {
	return &Document{
		data:     data,
		capture:  c,
		renderer: NewRenderer(cfg, c),
	}
}

func (d *Document) Capture() *capture.Capture {
	return d.capture
}

func (d *Document) Size() int {
	return len(d.data)
}

func (d *Document) BytesPerLine() int {
	return d.renderer.cfg.BytesPerLine
}

func (d *Document) TotalLines() int {
	return TotalLines(len(d.data), d.BytesPerLine())
}

// LineForOffset returns the logical line holding offset.
func (d *Document) LineForOffset(offset int) int {
	if offset <= 0 {
		return 0
	}
	return offset / d.BytesPerLine()
}

// Line renders logical line n. Out of range lines render as empty padding.
func (d *Document) Line(n int) Line {
	bpl := d.BytesPerLine()
	start := n * bpl
	if n < 0 || start >= len(d.data) {
		return d.renderer.RenderLine(max(start, 0), nil)
	}
	end := min(start+bpl, len(d.data))
	return d.renderer.RenderLine(start, d.data[start:end])
}

// TotalLines is ceil(size / bytesPerLine).
func TotalLines(size, bytesPerLine int) int {
	if size <= 0 || bytesPerLine <= 0 {
		return 0
	}
	return (size + bytesPerLine - 1) / bytesPerLine
}
