package output

import (
	"io"

	"orfscan/internal/jsonutil"
)

// WriteJSON writes the wire form of every item as one indented JSON array.
func WriteJSON[T Item](w io.Writer, list []T) error {
	wire := make([]any, len(list))
	for i, it := range list {
		wire[i] = it.Wire()
	}
	return jsonutil.EncodePretty(w, wire)
}
