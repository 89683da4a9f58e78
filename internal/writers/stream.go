package writers

import (
	"io"

	"orfscan/internal/output"
)

func init() {
	Register(output.FormatFASTA, startFASTA)
	Register(output.FormatText, startText)
	Register(output.FormatJSON, startJSON)
	Register(output.FormatJSONL, StartJSONL)
}

func bufSize(n int) int {
	if n <= 0 {
		return 64
	}
	return n
}

func startFASTA(out io.Writer, opt Options) (chan<- output.Item, <-chan error) {
	return run(opt.Buffer, func(in <-chan output.Item) error {
		return output.StreamFASTA[output.Item](out, in, opt.LineWidth)
	})
}

func startText(out io.Writer, opt Options) (chan<- output.Item, <-chan error) {
	return run(opt.Buffer, func(in <-chan output.Item) error {
		return output.StreamText[output.Item](out, in, opt.Header, opt.Render)
	})
}

// startJSON buffers everything: a JSON array is written only once the input closes.
func startJSON(out io.Writer, opt Options) (chan<- output.Item, <-chan error) {
	return run(opt.Buffer, func(in <-chan output.Item) error {
		var buf []output.Item
		for it := range in {
			buf = append(buf, it)
		}
		return output.WriteJSON(out, buf)
	})
}

// run starts body in a goroutine and drains whatever it leaves unread.
func run(n int, body func(<-chan output.Item) error) (chan<- output.Item, <-chan error) {
	in := make(chan output.Item, bufSize(n))
	done := make(chan error, 1)
	go func() {
		err := body(in)
		drain(in)
		done <- err
	}()
	return in, done
}
