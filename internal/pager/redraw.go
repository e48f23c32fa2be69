package pager

// Frame is what was on screen at the last draw.
type Frame struct {
	Start        int
	LinesPerPage int
	Width        int
	Height       int
	// Overlay is set while the key help covers the page.
	Overlay bool
}

// RedrawTracker suppresses redraws when nothing visible changed.
type RedrawTracker struct {
	last  Frame
	valid bool
}

func (t *RedrawTracker) NeedsRedraw(f Frame) bool {
	return !t.valid || t.last != f
}

func (t *RedrawTracker) Mark(f Frame) {
	t.last = f
	t.valid = true
}

// Invalidate forces the next NeedsRedraw to report true.
func (t *RedrawTracker) Invalidate() {
	t.valid = false
}
