package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/capview/internal/capture"
	"github.com/kk-code-lab/capview/internal/hexview"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	TitleBar      tcell.Style
	Status        tcell.Style
	Help          tcell.Style
	Offset        tcell.Style
	FileHeader    tcell.Style
	RecordHeader  tcell.Style
	RecordPayload tcell.Style
	Unclassified  tcell.Style
	Label         tcell.Style
	Value         tcell.Style
	Valid         tcell.Style
	Invalid       tcell.Style
	Warning       tcell.Style
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	base := tcell.StyleDefault
	return ColorTheme{
		TitleBar:      base.Reverse(true),
		Status:        base.Foreground(tcell.ColorWhite).Bold(true),
		Help:          base.Foreground(tcell.ColorGray),
		Offset:        base.Foreground(tcell.ColorDodgerBlue),
		FileHeader:    base.Background(tcell.ColorFuchsia).Foreground(tcell.ColorWhite).Bold(true),
		RecordHeader:  base.Background(tcell.ColorAqua).Foreground(tcell.ColorBlack).Bold(true),
		RecordPayload: base.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack),
		Unclassified:  base,
		Label:         base.Foreground(tcell.ColorSilver),
		Value:         base,
		Valid:         base.Foreground(tcell.ColorLime),
		Invalid:       base.Foreground(tcell.ColorRed).Bold(true),
		Warning:       base.Foreground(tcell.ColorOrange),
	}
}

// MonochromeTheme keeps regions distinguishable with attributes only.
func MonochromeTheme() ColorTheme {
	base := tcell.StyleDefault
	return ColorTheme{
		TitleBar:      base.Reverse(true),
		Status:        base.Bold(true),
		Help:          base,
		Offset:        base,
		FileHeader:    base.Reverse(true),
		RecordHeader:  base.Bold(true),
		RecordPayload: base,
		Unclassified:  base.Dim(true),
		Label:         base,
		Value:         base,
		Valid:         base,
		Invalid:       base.Reverse(true).Bold(true),
		Warning:       base.Underline(true),
	}
}

func (t ColorTheme) RegionStyle(kind capture.RegionKind) tcell.Style {
	switch kind {
	case capture.RegionFileHeader:
		return t.FileHeader
	case capture.RegionRecordHeader:
		return t.RecordHeader
	case capture.RegionRecordPayload:
		return t.RecordPayload
	default:
		return t.Unclassified
	}
}

func (t ColorTheme) RoleStyle(role hexview.Role) tcell.Style {
	switch role {
	case hexview.RoleLabel:
		return t.Label
	case hexview.RoleValid:
		return t.Valid
	case hexview.RoleInvalid:
		return t.Invalid
	case hexview.RoleWarning:
		return t.Warning
	default:
		return t.Value
	}
}

// PieceStyle picks the style for one piece of a hex line.
func (t ColorTheme) PieceStyle(p hexview.Piece) tcell.Style {
	switch p.Part {
	case hexview.PartOffset:
		return t.Offset
	case hexview.PartHex, hexview.PartASCII:
		if p.Pad {
			return tcell.StyleDefault
		}
		return t.RegionStyle(p.Kind)
	case hexview.PartAnnotation:
		return t.RoleStyle(p.Role)
	default:
		return tcell.StyleDefault
	}
}
