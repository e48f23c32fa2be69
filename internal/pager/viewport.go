// Package pager holds the viewport state over a line-indexed document.
package pager

// Viewport is a window of linesPerPage lines starting at start. A short final
// page is allowed, but start never exceeds max(0, totalLines-linesPerPage).
type Viewport struct {
	linesPerPage int
	start        int
	totalLines   int
}

func NewViewport(linesPerPage, totalLines int) *Viewport {
	return &Viewport{
		linesPerPage: max(linesPerPage, 0),
		totalLines:   max(totalLines, 0),
	}
}

func (v *Viewport) Start() int {
	return v.start
}

func (v *Viewport) LinesPerPage() int {
	return v.linesPerPage
}

func (v *Viewport) TotalLines() int {
	return v.totalLines
}

// End is one past the last visible line.
func (v *Viewport) End() int {
	return min(v.start+v.linesPerPage, v.totalLines)
}

func (v *Viewport) maxStart() int {
	if v.totalLines <= v.linesPerPage {
		return 0
	}
	return v.totalLines - v.linesPerPage
}

func (v *Viewport) clamp() {
	if v.start < 0 {
		v.start = 0
	}
	if m := v.maxStart(); v.start > m {
		v.start = m
	}
}

func (v *Viewport) ScrollUp() {
	if v.start > 0 {
		v.start--
	}
}

func (v *Viewport) ScrollDown() {
	if v.start < v.maxStart() {
		v.start++
	}
}

func (v *Viewport) PageUp() {
	v.start -= v.linesPerPage
	v.clamp()
}

func (v *Viewport) PageDown() {
	v.start += v.linesPerPage
	v.clamp()
}

func (v *Viewport) First() {
	v.start = 0
}

func (v *Viewport) Last() {
	v.start = v.maxStart()
}

// JumpToLine makes line the first visible line, clamped to the bounds.
func (v *Viewport) JumpToLine(line int) {
	v.start = line
	v.clamp()
}

// Resize sets the page height and re-clamps start. It reports whether the
// page height changed.
func (v *Viewport) Resize(linesPerPage int) bool {
	linesPerPage = max(linesPerPage, 0)
	changed := linesPerPage != v.linesPerPage
	v.linesPerPage = linesPerPage
	v.clamp()
	return changed
}

// CurrentPage is 1-based.
func (v *Viewport) CurrentPage() int {
	if v.linesPerPage == 0 {
		return 1
	}
	return v.start/v.linesPerPage + 1
}

func (v *Viewport) TotalPages() int {
	if v.linesPerPage == 0 || v.totalLines == 0 {
		return 1
	}
	return (v.totalLines + v.linesPerPage - 1) / v.linesPerPage
}
