// Package orf finds the candidate open reading frame in a translated
// sequence and classifies each of its boundaries.
//
// Only the leading candidate is ever reported: the run from the start of the
// translation up to the first stop, or to the end when there is no stop.
// Callers that want every stop-delimited segment must rescan remainders.
package orf

import (
	"bytes"
	"strconv"

	"orfscan-core/codon"
)

// Boundary says whether an ORF edge is known or only where the data ran out.
type Boundary int

const (
	Open   Boundary = iota // extent beyond the visible sequence is unknown
	Closed                 // delimited by a definite marker
)

func (b Boundary) String() string {
	if b == Closed {
		return "closed"
	}
	return "open"
}

// Interval is [Start, End) into an amino-acid sequence.
type Interval struct {
	Start, End  int
	Left, Right Boundary
}

func (iv Interval) Len() int { return iv.End - iv.Start }

// BothOpen reports whether neither edge of iv is known.
func (iv Interval) BothOpen() bool { return iv.Left == Open && iv.Right == Open }

// Notation renders iv as e.g. "[0:5)": '[' or ']' for a closed edge, '(' or
// ')' for an open one.
func (iv Interval) Notation() string {
	b := make([]byte, 0, 16)
	if iv.Left == Closed {
		b = append(b, '[')
	} else {
		b = append(b, '(')
	}
	b = strconv.AppendInt(b, int64(iv.Start), 10)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(iv.End), 10)
	if iv.Right == Closed {
		b = append(b, ']')
	} else {
		b = append(b, ')')
	}
	return string(b)
}

// Options filters candidates.
type Options struct {
	MinLength int  // minimum End-Start for an ORF to be reported
	AllowOpen bool // report ORFs open on both sides regardless of MinLength
}

// Qualifies applies the length filter to iv. Empty intervals never qualify.
func (o Options) Qualifies(iv Interval) bool {
	// Stricter than end-start >= MinLength: with MinLength 0 a leading stop
	// would otherwise report [0:0].
	if iv.Len() <= 0 {
		return false
	}
	if iv.Len() >= o.MinLength {
		return true
	}
	return iv.BothOpen() && o.AllowOpen
}

// Candidate returns the leading ORF candidate of aa without filtering.
// left is the classification of the start edge, decided by the caller from
// how aa was produced.
func Candidate(aa []byte, left Boundary) Interval {
	iv := Interval{Start: 0, Left: left}
	if i := bytes.IndexByte(aa, codon.Stop); i >= 0 {
		iv.End, iv.Right = i, Closed
	} else {
		iv.End, iv.Right = len(aa), Open
	}
	return iv
}

// Locate returns the leading candidate of aa if it passes opts.
func Locate(aa []byte, left Boundary, opts Options) (Interval, bool) {
	iv := Candidate(aa, left)
	if !opts.Qualifies(iv) {
		return Interval{}, false
	}
	return iv, true
}
