package output

import (
	"bufio"
	"io"
)

// DefaultLineWidth wraps FASTA sequences at 60 residues.
const DefaultLineWidth = 60

// StreamFASTA writes one FASTA record per item from the channel. lineWidth
// <= 0 writes each sequence on a single line.
func StreamFASTA[T Item](w io.Writer, in <-chan T, lineWidth int) error {
	bw := bufio.NewWriter(w)
	for it := range in {
		if err := writeRecord(bw, it, lineWidth); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFASTA writes a slice of items as FASTA records.
func WriteFASTA[T Item](w io.Writer, list []T, lineWidth int) error {
	bw := bufio.NewWriter(w)
	for _, it := range list {
		if err := writeRecord(bw, it, lineWidth); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(bw *bufio.Writer, it Item, lineWidth int) error {
	bw.WriteByte('>')
	bw.WriteString(it.RecordID())
	if d, ok := it.(Describer); ok {
		if desc := d.Description(); desc != "" {
			bw.WriteByte(' ')
			bw.WriteString(desc)
		}
	}
	bw.WriteByte('\n')
	seq := it.Residues()
	if lineWidth <= 0 || len(seq) <= lineWidth {
		bw.Write(seq)
		_, err := bw.WriteString("\n")
		return err
	}
	for len(seq) > 0 {
		n := lineWidth
		if n > len(seq) {
			n = len(seq)
		}
		bw.Write(seq[:n])
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}
