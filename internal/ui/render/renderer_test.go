package render

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/capview/internal/capture"
	"github.com/kk-code-lab/capview/internal/hexview"
	"github.com/kk-code-lab/capview/internal/pager"
)

func testDocument(t *testing.T, magic uint32, payloadLens ...int) *hexview.Document {
	t.Helper()
	buf := make([]byte, capture.FileHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	binary.LittleEndian.PutUint16(buf[4:6], capture.VersionMajor)
	binary.LittleEndian.PutUint16(buf[6:8], capture.VersionMinor)
	for _, n := range payloadLens {
		hdr := make([]byte, capture.RecordHeaderSize)
		binary.LittleEndian.PutUint32(hdr[8:12], uint32(n))
		buf = append(buf, hdr...)
		buf = append(buf, make([]byte, n)...)
	}
	c, err := capture.Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return hexview.NewDocument(hexview.DefaultConfig(), c, buf)
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if runes := cells[y*w+x].Runes; len(runes) > 0 {
			b.WriteString(string(runes))
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(screen tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x].Style
}

func TestContentRows(t *testing.T) {
	tests := []struct {
		height, want int
	}{
		{33, 30},
		{4, 1},
		{3, 0},
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ContentRows(tt.height); got != tt.want {
			t.Fatalf("ContentRows(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	screen := newTestScreen(t, 160, 8)
	doc := testDocument(t, capture.Magic, 40)
	vp := pager.NewViewport(ContentRows(8), doc.TotalLines())

	r := NewRenderer(screen, GetColorTheme())
	r.Render(View{Path: "sample.cap", Document: doc, Viewport: vp})

	if got := rowText(screen, 0); got != " capview sample.cap  72 bytes  1 records" {
		t.Fatalf("title = %q", got)
	}
	if got := rowText(screen, 1); !strings.HasPrefix(got, "00000000: A1 B2 C3 D4 02 00 04 00  00 00") {
		t.Fatalf("first line = %q", got)
	}
	if got := rowText(screen, 2); !strings.Contains(got, " #1 TIME: 1970-01-01T00:00:00.000000000 LEN: 40 CRC: 0x00000000") {
		t.Fatalf("second line = %q", got)
	}
	if got := rowText(screen, 6); got != " line 1-5/5  page 1/1  16 bytes/line" {
		t.Fatalf("status = %q", got)
	}
	if got := rowText(screen, 7); !strings.Contains(got, "? help") || !strings.Contains(got, "Esc/q quit") {
		t.Fatalf("footer = %q", got)
	}
}

func TestRenderColorsRegions(t *testing.T) {
	screen := newTestScreen(t, 160, 8)
	doc := testDocument(t, capture.Magic, 40)
	vp := pager.NewViewport(ContentRows(8), doc.TotalLines())
	theme := GetColorTheme()

	NewRenderer(screen, theme).Render(View{Path: "sample.cap", Document: doc, Viewport: vp})

	// Column 10 is the first hex digit of each line.
	if got := cellStyle(screen, 10, 1); got != theme.FileHeader {
		t.Fatalf("file header byte style = %v", got)
	}
	if got := cellStyle(screen, 10, 2); got != theme.RecordHeader {
		t.Fatalf("record header byte style = %v", got)
	}
	if got := cellStyle(screen, 10, 3); got != theme.RecordPayload {
		t.Fatalf("payload byte style = %v", got)
	}
}

func TestRenderFlagsInvalidHeader(t *testing.T) {
	screen := newTestScreen(t, 120, 6)
	doc := testDocument(t, 0x01020304)
	vp := pager.NewViewport(ContentRows(6), doc.TotalLines())

	NewRenderer(screen, MonochromeTheme()).Render(View{Path: "bad.cap", Document: doc, Viewport: vp})

	if got := rowText(screen, 0); !strings.HasSuffix(got, "INVALID HEADER") {
		t.Fatalf("title = %q", got)
	}
}

func TestRenderTinyScreens(t *testing.T) {
	doc := testDocument(t, capture.Magic, 40)
	for _, size := range [][2]int{{1, 1}, {10, 2}, {3, 3}, {80, 4}} {
		screen := newTestScreen(t, size[0], size[1])
		vp := pager.NewViewport(ContentRows(size[1]), doc.TotalLines())
		NewRenderer(screen, GetColorTheme()).Render(View{Path: "x", Document: doc, Viewport: vp})
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 20)
	doc := testDocument(t, capture.Magic)
	vp := pager.NewViewport(ContentRows(20), doc.TotalLines())

	NewRenderer(screen, GetColorTheme()).Render(View{Path: "x", Document: doc, Viewport: vp, ShowHelp: true})

	if got := strings.TrimSpace(rowText(screen, 0)); got != "Help" {
		t.Fatalf("overlay title = %q", got)
	}
	if got := rowText(screen, 2); got != "  Scrolling" {
		t.Fatalf("first section = %q", got)
	}
	if got := rowText(screen, 19); got != " any key closes" {
		t.Fatalf("overlay footer = %q", got)
	}
}

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil, GetColorTheme())

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{"fits without truncation", "sample.cap", 20, "sample.cap"},
		{"adds ellipsis when needed", "verylongname", 6, "veryl…"},
		{"only ellipsis when width too small", "example", 1, "…"},
		{"multi-byte characters respected", "你好世界", 5, "你好…"},
		{"returns empty when width is zero", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil, GetColorTheme())

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}
	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestFooterHelpListsBindings(t *testing.T) {
	got := buildFooterHelpText()
	want := " ↑↓ scroll  ←→ page  Home/End first/last  r refresh  ? help  Esc/q quit"
	if got != want {
		t.Fatalf("footer = %q, want %q", got, want)
	}
}
