package output

import (
	"bufio"
	"io"
)

// Renderer draws an optional block under a TSV row (used by --pretty).
type Renderer[T Item] func(T) string

// StreamText writes one TSV row per item, optionally preceded by header and
// followed by a rendered block when render is non-nil.
func StreamText[T Item](w io.Writer, in <-chan T, header string, render Renderer[T]) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		if _, err := bw.WriteString(header + "\n"); err != nil {
			return err
		}
	}
	for it := range in {
		if err := writeRow(bw, it, render); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteText is the slice form of StreamText.
func WriteText[T Item](w io.Writer, list []T, header string, render Renderer[T]) error {
	ch := make(chan T, len(list))
	for _, it := range list {
		ch <- it
	}
	close(ch)
	return StreamText[T](w, ch, header, render)
}

func writeRow[T Item](bw *bufio.Writer, it T, render Renderer[T]) error {
	bw.WriteString(it.Row())
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	if render == nil {
		return nil
	}
	block := render(it)
	if block == "" {
		return nil
	}
	bw.WriteString(block)
	if block[len(block)-1] != '\n' {
		bw.WriteByte('\n')
	}
	_, err := bw.WriteString("\n")
	return err
}
