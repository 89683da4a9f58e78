// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"orfscan/internal/jsonlutil"
	"orfscan/internal/output"
)

// StartJSONL streams each item as one JSON line (v1 wire form).
func StartJSONL(out io.Writer, opt Options) (chan<- output.Item, <-chan error) {
	return jsonlutil.Start[output.Item](out, bufSize(opt.Buffer),
		func(enc *json.Encoder, it output.Item) error {
			return enc.Encode(it.Wire())
		},
		IsBrokenPipe,
	)
}
