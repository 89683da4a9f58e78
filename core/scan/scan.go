// Package scan routes input records through translation and ORF location
// according to their alphabet.
package scan

import (
	"errors"
	"strings"

	"orfscan-core/codon"
	"orfscan-core/orf"
	"orfscan-core/seq"
	"orfscan-core/translate"
)

// ErrNotNucleotide is returned when translation is requested for amino-acid input.
var ErrNotNucleotide = errors.New("six-frame translation needs nucleotide input")

// Record is one input sequence.
type Record struct {
	ID  string
	Seq []byte
	// ReadLength is the nucleotide length of the read an amino-acid record
	// was translated from; 0 when unknown. Ignored for nucleotide records.
	ReadLength int
}

// TranslationRecord is one labelled frame of a nucleotide record.
type TranslationRecord struct {
	ReadID string
	translate.Translation
}

// ID is the output identifier: read id and frame label.
func (r TranslationRecord) ID() string { return r.ReadID + "-" + r.Label.String() }

// ORFRecord is the candidate ORF of one translation (or amino-acid record).
type ORFRecord struct {
	ReadID   string
	Label    translate.Label
	HasLabel bool // false for amino-acid input
	orf.Interval
	Seq         []byte // the ORF residues
	Translation []byte // the full sequence the ORF was cut from
}

// ID is the output identifier: read id, frame label (if any), boundary notation.
func (r ORFRecord) ID() string {
	var b strings.Builder
	b.WriteString(r.ReadID)
	if r.HasLabel {
		b.WriteByte('-')
		b.WriteString(r.Label.String())
	}
	b.WriteByte('-')
	b.WriteString(r.Notation())
	return b.String()
}

// Scanner holds the per-run settings. The zero value scans DNA with the
// standard code and no length filter.
type Scanner struct {
	Alphabet      seq.Alphabet
	MinORFLength  int
	AllowOpenORFs bool
	Table         *codon.Table // nil means codon.Standard
}

func (s Scanner) table() *codon.Table {
	if s.Table == nil {
		return codon.Standard
	}
	return s.Table
}

func (s Scanner) options() orf.Options {
	return orf.Options{MinLength: s.MinORFLength, AllowOpen: s.AllowOpenORFs}
}

// Check validates rec against the configured alphabet.
func (s Scanner) Check(rec Record) error {
	return seq.Validate(rec.ID, s.Alphabet, rec.Seq)
}

// Translations returns the six frames of a nucleotide record.
func (s Scanner) Translations(rec Record) ([]TranslationRecord, error) {
	if !s.Alphabet.IsNucleotide() {
		return nil, ErrNotNucleotide
	}
	if err := s.Check(rec); err != nil {
		return nil, err
	}
	frames := translate.SixFrames(s.table(), s.Alphabet, rec.Seq)
	out := make([]TranslationRecord, len(frames))
	for i, tr := range frames {
		out[i] = TranslationRecord{ReadID: rec.ID, Translation: tr}
	}
	return out, nil
}

// ORFs returns the qualifying ORFs of rec: at most one per frame for
// nucleotide input, at most one for amino-acid input.
func (s Scanner) ORFs(rec Record) ([]ORFRecord, error) {
	if !s.Alphabet.IsNucleotide() {
		if err := s.Check(rec); err != nil {
			return nil, err
		}
		return s.aminoORFs(rec), nil
	}
	frames, err := s.Translations(rec)
	if err != nil {
		return nil, err
	}
	opts := s.options()
	var out []ORFRecord
	for _, tr := range frames {
		left := orf.Open
		if tr.InRegister() {
			left = orf.Closed
		}
		iv, ok := orf.Locate(tr.Seq, left, opts)
		if !ok {
			continue
		}
		out = append(out, ORFRecord{
			ReadID:      rec.ID,
			Label:       tr.Label,
			HasLabel:    true,
			Interval:    iv,
			Seq:         tr.Seq[iv.Start:iv.End],
			Translation: tr.Seq,
		})
	}
	return out, nil
}

// aminoORFs locates the ORF of a pre-translated record. A record whose id
// ends in a frame label we produced gets the same left boundary the
// nucleotide path gave that frame. Without the read length a reverse frame
// cannot be placed on the read and is Open.
func (s Scanner) aminoORFs(rec Record) []ORFRecord {
	left := orf.Closed
	if l, ok := labelSuffix(rec.ID); ok {
		tr := translate.Translation{Label: l, ReadLength: rec.ReadLength}
		if !tr.InRegister() || (l.Strand == seq.Reverse && rec.ReadLength <= 0) {
			left = orf.Open
		}
	}
	iv, ok := orf.Locate(rec.Seq, left, s.options())
	if !ok {
		return nil
	}
	return []ORFRecord{{
		ReadID:      rec.ID,
		Interval:    iv,
		Seq:         rec.Seq[iv.Start:iv.End],
		Translation: rec.Seq,
	}}
}

func labelSuffix(id string) (translate.Label, bool) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return translate.Label{}, false
	}
	return translate.ParseLabel(id[i+1:])
}
