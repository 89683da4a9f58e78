// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed FASTA or FASTQ entry.
type Record struct {
	ID   string
	Desc string // header text after the id, trimmed
	Seq  []byte
}

// Format of a record stream.
type Format int

const (
	FormatUnknown Format = iota
	FormatFASTA
	FormatFASTQ
)

var ErrTruncatedFASTQ = errors.New("fastq: truncated record")

// StreamCtx parses records from r and calls emit for each one. The format is
// chosen from the first non-blank line ('>' FASTA, '@' FASTQ). FASTQ
// qualities are read and discarded.
//
// It is cancelable: it returns ctx.Err() promptly when ctx is Done.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	format := FormatUnknown
	for format == FormatUnknown && sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '>':
			format = FormatFASTA
		case '@':
			format = FormatFASTQ
		default:
			return fmt.Errorf("fasta: input does not start with '>' or '@' (got %q)", clip(line))
		}
		hdr := parseHeader(line[1:])
		var err error
		if format == FormatFASTA {
			err = streamFASTA(ctx, sc, hdr, emit)
		} else {
			err = streamFASTQ(ctx, sc, hdr, emit)
		}
		if err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

type header struct{ id, desc string }

func streamFASTA(ctx context.Context, sc *bufio.Scanner, h header, emit func(Record) error) error {
	seq := make([]byte, 0, 1<<16)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := emit(Record{ID: h.id, Desc: h.desc, Seq: bytes.Clone(seq)}); err != nil {
				return err
			}
			seq = seq[:0]
			h = parseHeader(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return emit(Record{ID: h.id, Desc: h.desc, Seq: bytes.Clone(seq)})
}

func streamFASTQ(ctx context.Context, sc *bufio.Scanner, h header, emit func(Record) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		var seq []byte
		sawPlus := false
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) > 0 && line[0] == '+' {
				sawPlus = true
				break
			}
			seq = append(seq, line...)
		}
		if !sawPlus {
			return fmt.Errorf("%w %q: missing '+' line", ErrTruncatedFASTQ, h.id)
		}
		qual := 0
		for qual < len(seq) && sc.Scan() {
			qual += len(bytes.TrimSpace(sc.Bytes()))
		}
		if qual < len(seq) {
			return fmt.Errorf("%w %q: %d quality values for %d bases", ErrTruncatedFASTQ, h.id, qual, len(seq))
		}
		if err := emit(Record{ID: h.id, Desc: h.desc, Seq: seq}); err != nil {
			return err
		}

		// next header, skipping blank lines
		var next header
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			if line[0] != '@' {
				return fmt.Errorf("fastq: expected '@' header after %q, got %q", h.id, clip(line))
			}
			next = parseHeader(line[1:])
			break
		}
		if next.id == "" {
			return sc.Err()
		}
		h = next
	}
}

// StreamPathCtx opens path (see Open) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadAll collects every record of r. Convenient for small inputs and tests.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	err := StreamCtx(context.Background(), r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

func parseHeader(hdr []byte) header {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return header{id: string(hdr[:i]), desc: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return header{id: string(hdr)}
}

func clip(b []byte) string {
	if len(b) > 20 {
		return string(b[:20]) + "..."
	}
	return string(b)
}
