package seq

import (
	"fmt"
	"strings"
)

// maxShown bounds how much of a sequence an AlphabetError quotes.
const maxShown = 60

// AlphabetError rejects a record whose sequence does not fit the configured
// alphabet. It names the record so the offending input can be found.
type AlphabetError struct {
	ID       string
	Seq      string
	Alphabet Alphabet
	Pos      int
	Symbol   byte
}

// Validate returns an *AlphabetError if s holds a symbol that a does not allow.
func Validate(id string, a Alphabet, s []byte) error {
	i := Check(a, s)
	if i < 0 {
		return nil
	}
	return &AlphabetError{ID: id, Seq: string(s), Alphabet: a, Pos: i, Symbol: s[i]}
}

func (e *AlphabetError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "record %q: sequence %q has %q at position %d, which is not a valid %s symbol",
		e.ID, abbreviate(e.Seq), e.Symbol, e.Pos, e.Alphabet)
	if want, ok := e.Suggest(); ok {
		fmt.Fprintf(&b, "; it looks like %s, was the input type meant to be --type %s?", describe(want), want)
	} else {
		b.WriteString("; check the --type setting")
	}
	return b.String()
}

// Suggest returns the alphabet the rejected sequence does validate against.
func (e *AlphabetError) Suggest() (Alphabet, bool) {
	a, ok := Guess([]byte(e.Seq))
	if !ok || a == e.Alphabet || (a.IsNucleotide() && e.Alphabet.IsNucleotide()) {
		return a, false
	}
	return a, true
}

func describe(a Alphabet) string {
	if a.IsNucleotide() {
		return "a nucleotide sequence"
	}
	return "an amino-acid sequence"
}

func abbreviate(s string) string {
	if len(s) <= maxShown {
		return s
	}
	return s[:maxShown] + "..."
}
