package app

import (
	"bufio"
	"io"

	"github.com/kk-code-lab/capview/internal/capture"
	"github.com/kk-code-lab/capview/internal/hexview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dump writes the annotated dump starting at the line holding startOffset.
// maxLines of zero writes everything to the end of the file. Invalid header
// values are followed by '!' since there is no colour to flag them.
func Dump(w io.Writer, doc *hexview.Document, startOffset, maxLines int) error {
	bw := bufio.NewWriter(w)

	first := doc.LineForOffset(startOffset)
	last := doc.TotalLines()
	if maxLines > 0 && first+maxLines < last {
		last = first + maxLines
	}

	for n := first; n < last; n++ {
		line := doc.Line(n)
		if _, err := bw.WriteString(line.Text(true)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteInfo prints the file header and the first count records.
func WriteInfo(w io.Writer, doc *hexview.Document, path string, count int) error {
	p := message.NewPrinter(language.English)
	c := doc.Capture()
	h := c.Header

	bw := bufio.NewWriter(w)
	p.Fprintf(bw, "file:       %s\n", path)
	p.Fprintf(bw, "size:       %d bytes\n", c.Size)
	p.Fprintf(bw, "magic:      0x%08X%s\n", h.Magic, validity(h.MagicValid()))
	p.Fprintf(bw, "version:    %d.%d%s\n", h.Major, h.Minor, validity(h.VersionValid()))
	p.Fprintf(bw, "timezone:   %d\n", h.TimezoneOffset)
	p.Fprintf(bw, "accuracy:   %d\n", h.TimestampAccuracy)
	p.Fprintf(bw, "records:    %d\n", len(c.Records))
	if trailing := c.TrailingBytes(); trailing > 0 {
		p.Fprintf(bw, "trailing:   %d bytes at 0x%08X\n", trailing, c.ParsedEnd())
	}

	shown := len(c.Records)
	if count >= 0 && count < shown {
		shown = count
	}
	for i := 0; i < shown; i++ {
		writeRecordSummary(bw, p, i, c.Records[i])
	}
	if rest := len(c.Records) - shown; rest > 0 {
		p.Fprintf(bw, "... and %d more\n", rest)
	}
	return bw.Flush()
}

func writeRecordSummary(w io.Writer, p *message.Printer, i int, rec capture.Record) {
	ts, _ := hexview.FormatTimestamp(rec.Header.TimestampSeconds, rec.Header.TimestampNanoseconds)
	p.Fprintf(w, "#%-6d 0x%08X  %s  len %d  crc 0x%08X\n",
		i+1, rec.Start, ts, rec.Header.PayloadLength, rec.Header.Checksum)
}

func validity(ok bool) string {
	if ok {
		return ""
	}
	return " (invalid)"
}
