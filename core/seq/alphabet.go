// core/seq/alphabet.go
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet selects how a record's sequence is interpreted.
type Alphabet int

const (
	DNA Alphabet = iota
	RNA
	AminoAcid
)

var ErrUnknownAlphabet = errors.New("unknown alphabet")

// ParseAlphabet accepts dna, rna, aa, protein or aminoacid (any case).
func ParseAlphabet(s string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "aa", "protein", "aminoacid", "amino-acid":
		return AminoAcid, nil
	}
	return DNA, fmt.Errorf("%w %q (want dna, rna or aa)", ErrUnknownAlphabet, s)
}

// String returns the flag spelling of a.
func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case AminoAcid:
		return "aa"
	}
	return fmt.Sprintf("Alphabet(%d)", int(a))
}

func (a Alphabet) IsNucleotide() bool { return a == DNA || a == RNA }

// Strand is the orientation a translation was read from.
type Strand int

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "revcomp"
	}
	return "forward"
}

// nucleotide symbols: IUPAC bases and ambiguity codes, both T and U, gaps.
var nucleotideOK [256]bool

// amino-acid symbols: every one-letter code (incl. B, J, O, U, Z, X), stop, gap.
var aminoOK [256]bool

func init() {
	for _, b := range []byte("ACGTURYSWKMBDHVN-.") {
		nucleotideOK[b] = true
		if b >= 'A' && b <= 'Z' {
			nucleotideOK[b+'a'-'A'] = true
		}
	}
	for b := 'A'; b <= 'Z'; b++ {
		aminoOK[b] = true
		aminoOK[b+'a'-'A'] = true
	}
	aminoOK['*'], aminoOK['-'] = true, true
}

// Check returns the index of the first symbol of s that is not valid for a,
// or -1 if every symbol is valid.
func Check(a Alphabet, s []byte) int {
	ok := &aminoOK
	if a.IsNucleotide() {
		ok = &nucleotideOK
	}
	for i, b := range s {
		if !ok[b] {
			return i
		}
	}
	return -1
}

// Guess returns the alphabet s validates against, preferring nucleotides.
// ok is false when s is not valid under any alphabet.
func Guess(s []byte) (a Alphabet, ok bool) {
	if Check(DNA, s) < 0 {
		return DNA, true
	}
	if Check(AminoAcid, s) < 0 {
		return AminoAcid, true
	}
	return DNA, false
}
