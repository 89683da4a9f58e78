// Package translate turns nucleotide sequences into amino-acid sequences,
// one reading frame at a time or all six at once.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"orfscan-core/codon"
	"orfscan-core/seq"
)

// Label identifies one of the six reading frames.
type Label struct {
	Frame  int // 0, 1 or 2
	Strand seq.Strand
}

// String renders the label as frame0 ... frame2rc.
func (l Label) String() string {
	s := "frame" + strconv.Itoa(l.Frame)
	if l.Strand == seq.Reverse {
		s += "rc"
	}
	return s
}

// ParseLabel parses the form produced by Label.String.
func ParseLabel(s string) (Label, bool) {
	rest, ok := strings.CutPrefix(s, "frame")
	if !ok || len(rest) == 0 {
		return Label{}, false
	}
	var l Label
	if r, rc := strings.CutSuffix(rest, "rc"); rc {
		l.Strand = seq.Reverse
		rest = r
	}
	if len(rest) != 1 || rest[0] < '0' || rest[0] > '2' {
		return Label{}, false
	}
	l.Frame = int(rest[0] - '0')
	return l, true
}

// LengthTag renders a read length for a FASTA description: "len=<n>".
func LengthTag(n int) string { return "len=" + strconv.Itoa(n) }

// ParseLengthTag finds a "len=<n>" field in a whitespace-separated FASTA
// description. It reports false when there is none or n is not positive.
func ParseLengthTag(desc string) (int, bool) {
	for _, f := range strings.Fields(desc) {
		v, ok := strings.CutPrefix(f, "len=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Labels is the fixed six-frame order.
var Labels = [6]Label{
	{0, seq.Forward}, {1, seq.Forward}, {2, seq.Forward},
	{0, seq.Reverse}, {1, seq.Reverse}, {2, seq.Reverse},
}

// Translation is one frame of a read.
type Translation struct {
	Label      Label
	Seq        []byte // amino acids, '*' for stops, 'X' for unknown codons
	ReadLength int    // nucleotides in the source read
}

// InRegister reports whether the frame's codon grid starts on the first base
// of the original read: forward frame 0, or a reverse-complement frame whose
// last full codon ends exactly at read position 0.
func (t Translation) InRegister() bool {
	if t.Label.Strand == seq.Forward {
		return t.Label.Frame == 0
	}
	return (t.ReadLength-t.Label.Frame)%3 == 0
}

// Frame translates s from offset onward. A trailing partial codon yields
// one codon.Unknown, so len(result) == ceil((len(s)-offset)/3).
func Frame(tbl *codon.Table, s []byte, offset int) []byte {
	if offset < 0 {
		panic(fmt.Sprintf("translate: negative frame offset %d", offset))
	}
	if offset >= len(s) {
		return []byte{}
	}
	n := len(s) - offset
	out := make([]byte, 0, (n+2)/3)
	for i := offset; i < len(s); i += 3 {
		end := i + 3
		if end > len(s) {
			end = len(s)
		}
		out = append(out, tbl.Translate(s[i:end]))
	}
	return out
}

// SixFrames translates s in the order given by Labels. The reverse
// complement is computed once and shared by the three rc frames.
func SixFrames(tbl *codon.Table, a seq.Alphabet, s []byte) [6]Translation {
	rc := seq.ReverseComplement(a, s)
	var out [6]Translation
	for i, l := range Labels {
		src := s
		if l.Strand == seq.Reverse {
			src = rc
		}
		out[i] = Translation{Label: l, Seq: Frame(tbl, src, l.Frame), ReadLength: len(s)}
	}
	return out
}
