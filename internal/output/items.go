// internal/output/items.go
package output

import (
	"fmt"
	"strconv"

	"orfscan-core/scan"
	"orfscan-core/translate"
	"orfscan/pkg/api"
)

// Item is anything the writers can serialize.
type Item interface {
	// RecordID is the FASTA header / "id" column.
	RecordID() string
	// Residues is the sequence written to FASTA.
	Residues() []byte
	// Row is the TSV line (no trailing newline).
	Row() string
	// Wire is the pkg/api value used for JSON and JSONL.
	Wire() any
}

// Describer is implemented by items that carry a FASTA description.
type Describer interface {
	Description() string
}

// Translation wraps one frame of a read.
type Translation struct{ scan.TranslationRecord }

// ORF wraps one located ORF.
type ORF struct{ scan.ORFRecord }

func (t Translation) RecordID() string { return t.ID() }
func (t Translation) Residues() []byte { return t.Seq }

// Description records the read length so that `orfs --type aa` can place
// reverse frames on the read.
func (t Translation) Description() string { return translate.LengthTag(t.ReadLength) }

func (t Translation) Row() string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%d\t%s",
		t.ID(), t.ReadID, t.Label.Frame, t.Label.Strand, len(t.Seq), t.Seq)
}

func (t Translation) Wire() any { return ToAPITranslation(t.TranslationRecord) }

func (o ORF) RecordID() string { return o.ID() }
func (o ORF) Residues() []byte { return o.Seq }

func (o ORF) Row() string {
	frame, strand := ".", "."
	if o.HasLabel {
		frame, strand = strconv.Itoa(o.Label.Frame), o.Label.Strand.String()
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%d\t%s",
		o.ID(), o.ReadID, frame, strand, o.Start, o.End, o.Left, o.Right, o.Len(), o.Seq)
}

func (o ORF) Wire() any { return ToAPIORF(o.ORFRecord) }

// ToAPITranslation converts a domain translation to the stable wire schema (v1).
func ToAPITranslation(t scan.TranslationRecord) api.TranslationV1 {
	return api.TranslationV1{
		ID:         t.ID(),
		ReadID:     t.ReadID,
		Label:      t.Label.String(),
		Frame:      t.Label.Frame,
		Strand:     t.Label.Strand.String(),
		Length:     len(t.Seq),
		ReadLength: t.ReadLength,
		Seq:        string(t.Seq),
	}
}

// ToAPIORF converts a domain ORF to the stable wire schema (v1).
func ToAPIORF(o scan.ORFRecord) api.ORFV1 {
	v := api.ORFV1{
		ID:       o.ID(),
		ReadID:   o.ReadID,
		Start:    o.Start,
		End:      o.End,
		Length:   o.Len(),
		Left:     o.Left.String(),
		Right:    o.Right.String(),
		Notation: o.Notation(),
		Seq:      string(o.Seq),
	}
	if o.HasLabel {
		frame := o.Label.Frame
		v.Label = o.Label.String()
		v.Frame = &frame
		v.Strand = o.Label.Strand.String()
	}
	return v
}

// Translations wraps a slice for the writers.
func Translations(list []scan.TranslationRecord) []Item {
	out := make([]Item, len(list))
	for i, t := range list {
		out[i] = Translation{t}
	}
	return out
}

// ORFs wraps a slice for the writers.
func ORFs(list []scan.ORFRecord) []Item {
	out := make([]Item, len(list))
	for i, o := range list {
		out[i] = ORF{o}
	}
	return out
}
