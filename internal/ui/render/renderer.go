package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/capview/internal/hexview"
	"github.com/kk-code-lab/capview/internal/pager"
	textutil "github.com/kk-code-lab/capview/internal/textutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	headerRows = 1
	footerRows = 2
	// ReservedRows is the number of rows not available for hex lines.
	ReservedRows = headerRows + footerRows
)

// ContentRows returns how many hex lines fit on a screen of the given height.
func ContentRows(height int) int {
	return max(height-ReservedRows, 0)
}

// View is everything one frame needs.
type View struct {
	Path     string
	Document *hexview.Document
	Viewport *pager.Viewport
	// ShowHelp draws the key help over the page.
	ShowHelp bool
}

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	theme   ColorTheme
	printer *message.Printer
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen:  screen,
		theme:   theme,
		printer: message.NewPrinter(language.English),
	}
}

// Render draws the whole screen for view.
func (r *Renderer) Render(view View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	if view.ShowHelp {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawTitle(view, w)

	rows := ContentRows(h)
	vp := view.Viewport
	y := headerRows
	for n := vp.Start(); n < vp.End() && y < headerRows+rows; n++ {
		r.drawLine(y, w, view.Document.Line(n))
		y++
	}

	if h > headerRows {
		r.fillRow(h-footerRows, w, r.theme.Status, r.statusText(view))
	}
	if h > headerRows+1 {
		r.fillRow(h-1, w, r.theme.Help, buildFooterHelpText())
	}

	r.screen.Show()
}

func (r *Renderer) drawTitle(view View, w int) {
	style := r.theme.TitleBar
	x := r.drawTextLine(0, 0, w, " capview ", style.Bold(true))
	x = r.drawTextLine(x, 0, w-x, r.titleText(view, w-x), style)

	if c := view.Document.Capture(); !c.Header.Valid() && x < w {
		x = r.drawTextLine(x, 0, w-x, "  INVALID HEADER", style.Foreground(tcell.ColorRed).Bold(true))
	}
	for ; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
}

// titleText fits in width columns by shortening the path, never the counts.
func (r *Renderer) titleText(view View, width int) string {
	doc := view.Document
	c := doc.Capture()
	parts := []string{
		r.printer.Sprintf("%d bytes", doc.Size()),
		r.printer.Sprintf("%d records", len(c.Records)),
	}
	if trailing := c.TrailingBytes(); trailing > 0 {
		parts = append(parts, r.printer.Sprintf("%d trailing", trailing))
	}
	counts := strings.Join(parts, "  ")
	pathWidth := max(width-r.measureTextWidth(counts)-2, 1)
	return textutil.DisplayPath(view.Path, pathWidth) + "  " + counts
}

func (r *Renderer) statusText(view View) string {
	vp := view.Viewport
	first, last := 0, vp.End()
	if vp.TotalLines() > 0 {
		first = vp.Start() + 1
	}
	return r.printer.Sprintf(" line %d-%d/%d  page %d/%d  %d bytes/line",
		first, last, vp.TotalLines(), vp.CurrentPage(), vp.TotalPages(), view.Document.BytesPerLine())
}

func (r *Renderer) drawLine(y, w int, line hexview.Line) {
	x := 0
	for _, piece := range line.Pieces() {
		if x >= w {
			return
		}
		x = r.drawTextLine(x, y, w-x, piece.Text, r.theme.PieceStyle(piece))
	}
}

func (r *Renderer) fillRow(y, w int, style tcell.Style, text string) {
	x := r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style)
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
