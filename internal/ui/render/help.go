package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/capview/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
	// short is the footer hint; empty keeps the entry out of the footer.
	short string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpSections = []helpOverlaySection{
	{
		title: "Scrolling",
		entries: []helpOverlayEntry{
			{keys: "↑/↓ k/j", desc: "Scroll one line", short: "↑↓ scroll"},
			{keys: "←/→ PgUp/PgDn", desc: "Scroll one page", short: "←→ page"},
			{keys: "Home/End g/G", desc: "First / last page", short: "Home/End first/last"},
		},
	},
	{
		title: "Screen",
		entries: []helpOverlayEntry{
			{keys: "r", desc: "Redraw and re-read terminal size", short: "r refresh"},
			{keys: "Ctrl+Z", desc: "Suspend to shell"},
			{keys: "?", desc: "Show this help", short: "? help"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "Esc/q", desc: "Quit", short: "Esc/q quit"},
			{keys: "Ctrl+C", desc: "Quit"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 16)
	for i, section := range helpSections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-16s %s", key, desc)
}

// buildFooterHelpText returns the one-line key hint shown under the status bar.
func buildFooterHelpText() string {
	var parts []string
	for _, section := range helpSections {
		for _, entry := range section.entries {
			if entry.short != "" {
				parts = append(parts, entry.short)
			}
		}
	}
	return " " + strings.Join(parts, "  ")
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := r.theme.TitleBar.Bold(true)
	titleStart := 0
	if titleWidth := r.measureTextWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		text := r.truncateTextToWidth(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		r.fillRow(h-1, w, r.theme.Help, " any key closes")
	}
}
