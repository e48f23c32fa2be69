package hexview

import (
	"fmt"

	"github.com/kk-code-lab/capview/internal/capture"
)

// Part identifies which column a piece belongs to.
type Part int

const (
	PartOffset Part = iota
	PartHex
	PartSpace
	PartSeparator
	PartASCII
	PartAnnotation
)

// Piece is a styled run of line text, in display order.
type Piece struct {
	Text string
	Part Part
	// Kind is set for hex and ASCII pieces.
	Kind capture.RegionKind
	// Pad is set for hex and ASCII pieces past the end of the data.
	Pad bool
	// Role is set for annotation pieces.
	Role Role
}

const hexDigits = "0123456789ABCDEF"

// Pieces lays the line out as: offset, hex column, ASCII sidebar, annotation.
func (l Line) Pieces() []Piece {
	pieces := make([]Piece, 0, len(l.Cells)*3+len(l.Annotation)+4)
	pieces = append(pieces, Piece{Text: fmt.Sprintf("%08X:", l.Offset), Part: PartOffset})
	pieces = append(pieces, Piece{Text: " ", Part: PartSpace})

	for i, cell := range l.Cells {
		if i > 0 && l.groupSize > 0 && i%l.groupSize == 0 {
			pieces = append(pieces, Piece{Text: " ", Part: PartSpace})
		}
		text := "  "
		if !cell.Pad {
			text = string([]byte{hexDigits[cell.Byte>>4], hexDigits[cell.Byte&0x0F]})
		}
		pieces = append(pieces,
			Piece{Text: text, Part: PartHex, Kind: cell.Kind, Pad: cell.Pad},
			Piece{Text: " ", Part: PartSpace},
		)
	}

	pieces = append(pieces, Piece{Text: "|", Part: PartSeparator})
	if l.showASCII {
		for _, cell := range l.Cells {
			ch := byte(' ')
			if !cell.Pad {
				ch = PrintableASCII(cell.Byte)
			}
			pieces = append(pieces, Piece{Text: string(ch), Part: PartASCII, Kind: cell.Kind, Pad: cell.Pad})
		}
		pieces = append(pieces, Piece{Text: "|", Part: PartSeparator})
	}

	for _, seg := range l.Annotation {
		pieces = append(pieces, Piece{Text: seg.Text, Part: PartAnnotation, Role: seg.Role})
	}
	return pieces
}
