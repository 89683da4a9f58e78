// Package pretty draws the human-readable blocks printed under text rows
// when --pretty is set.
package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gedex/inflector"

	"orfscan-core/codon"
	"orfscan-core/scan"
	"orfscan/internal/output"
)

// Options control the ASCII rendering.
type Options struct {
	// Wrap residues at this width. If <=0, use default (60).
	Width int

	// Draw a caret track (^^^^^) under the ORF residues.
	ShowCaret  bool
	CaretGlyph string // default "^"

	// Colors for stops, unknown residues and the ORF span. Ignored when
	// color.NoColor is set (non-tty, NO_COLOR, or tests).
	Stop    *color.Color
	Unknown *color.Color
	Span    *color.Color
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:      60,
	ShowCaret:  true,
	CaretGlyph: "^",
	Stop:       color.New(color.FgRed, color.Bold),
	Unknown:    color.New(color.FgYellow),
	Span:       color.New(color.FgGreen),
}

const linePrefix = "# "

// Render draws a block for any output item; unknown kinds render nothing.
func Render(it output.Item) string {
	return RenderWithOptions(it, DefaultOptions)
}

// RenderWithOptions is Render with explicit options.
func RenderWithOptions(it output.Item, o Options) string {
	switch v := it.(type) {
	case output.Translation:
		return RenderTranslation(v.TranslationRecord, o)
	case output.ORF:
		return RenderORF(v.ORFRecord, o)
	}
	return ""
}

// RenderTranslation shows a frame with its stops and unknown residues highlighted.
func RenderTranslation(t scan.TranslationRecord, o Options) string {
	o = withDefaults(o)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s (%s, %d nt): %s, %s\n", linePrefix,
		t.Label, t.Label.Strand, t.ReadLength,
		count(len(t.Seq), "residue"), count(countByte(t.Seq, codon.Stop), "stop"))
	for _, row := range chunk(len(t.Seq), o.Width) {
		b.WriteString(linePrefix)
		b.WriteString(paint(t.Seq[row[0]:row[1]], row[0], -1, -1, o))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderORF shows the whole sequence the ORF was cut from with the ORF span
// highlighted, a caret track under it, and its boundary notation.
func RenderORF(r scan.ORFRecord, o Options) string {
	o = withDefaults(o)
	src := r.Translation
	if src == nil {
		src = r.Seq
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s, left %s, right %s\n", linePrefix,
		r.Notation(), count(r.Len(), "residue"), r.Left, r.Right)
	for _, row := range chunk(len(src), o.Width) {
		b.WriteString(linePrefix)
		b.WriteString(paint(src[row[0]:row[1]], row[0], r.Start, r.End, o))
		b.WriteByte('\n')
		if !o.ShowCaret {
			continue
		}
		track := caretTrack(row[0], row[1], r.Start, r.End, o.CaretGlyph)
		if strings.TrimSpace(track) != "" {
			b.WriteString(linePrefix)
			b.WriteString(track)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func withDefaults(o Options) Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.CaretGlyph == "" {
		o.CaretGlyph = "^"
	}
	if o.Stop == nil {
		o.Stop = DefaultOptions.Stop
	}
	if o.Unknown == nil {
		o.Unknown = DefaultOptions.Unknown
	}
	if o.Span == nil {
		o.Span = DefaultOptions.Span
	}
	return o
}

// paint colors residues; off is the index of seg[0] in the full sequence and
// [start,end) the span to highlight (start<0 for none).
func paint(seg []byte, off, start, end int, o Options) string {
	var b strings.Builder
	for i, c := range seg {
		s := string(c)
		switch pos := off + i; {
		case c == codon.Stop:
			b.WriteString(o.Stop.Sprint(s))
		case c == codon.Unknown:
			b.WriteString(o.Unknown.Sprint(s))
		case start >= 0 && pos >= start && pos < end:
			b.WriteString(o.Span.Sprint(s))
		default:
			b.WriteString(s)
		}
	}
	return b.String()
}

func caretTrack(from, to, start, end int, glyph string) string {
	var b strings.Builder
	for i := from; i < to; i++ {
		if i >= start && i < end {
			b.WriteString(glyph)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func chunk(n, width int) [][2]int {
	if n == 0 {
		return [][2]int{{0, 0}}
	}
	var out [][2]int
	for i := 0; i < n; i += width {
		j := i + width
		if j > n {
			j = n
		}
		out = append(out, [2]int{i, j})
	}
	return out
}

func countByte(s []byte, c byte) int {
	n := 0
	for _, x := range s {
		if x == c {
			n++
		}
	}
	return n
}

func count(n int, noun string) string {
	if n != 1 {
		noun = inflector.Pluralize(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}
