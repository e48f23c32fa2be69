// Package textutil cleans user-controlled text, such as the capture path,
// before it is drawn on the terminal.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Bidi and zero-width runes are shown by name so a path cannot reorder or
// hide parts of the title bar.
var formattingRuneLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText replaces control characters so user-controlled text
// cannot inject terminal escape sequences when rendered. Whitespace controls
// become a space, other C0 controls and DEL become '?'.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if needsReplacement(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		if label, ok := formattingRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsReplacement(r rune) bool {
	if _, ok := formattingRuneLabels[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}

// DisplayPath prepares a file path for the title bar: composed to NFC,
// sanitised, and shortened from the left to fit width columns. A width of
// zero or less disables shortening.
func DisplayPath(path string, width int) string {
	text := SanitizeTerminalText(norm.NFC.String(path))
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return TruncateLeft(text, width)
}

// TruncateLeft keeps the tail of text, which for paths is the file name,
// prefixing it with an ellipsis so the result is at most width columns.
func TruncateLeft(text string, width int) string {
	const ellipsis = "…"
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ellipsis
	}

	runes := []rune(text)
	avail := width - 1
	used := 0
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if used+w > avail {
			break
		}
		used += w
		i--
	}
	return ellipsis + string(runes[i:])
}
