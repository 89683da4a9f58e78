// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"orfscan/internal/output"
)

// Options configure a writer goroutine.
type Options struct {
	Format    string
	Header    string // TSV header row; empty means none
	LineWidth int    // FASTA wrap width; <=0 means one line per sequence
	Render    output.Renderer[output.Item]
	Buffer    int
}

// Starter launches a writer goroutine for one format.
type Starter func(out io.Writer, opt Options) (chan<- output.Item, <-chan error)

// Registry of writers (format → starter). Register in init() blocks.
var registry = map[string]Starter{}

// Register installs fn for format (idempotent last-wins).
func Register(format string, fn Starter) { registry[format] = fn }

// Registered lists the known formats in sorted order.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the writer registered for opt.Format. An unknown
// format yields a writer that drains its input and reports the error.
func Start(out io.Writer, opt Options) (chan<- output.Item, <-chan error) {
	if fn, ok := registry[opt.Format]; ok {
		return fn(out, opt)
	}
	return failing(fmt.Errorf("unknown output format %q (no writer registered)", opt.Format), opt.Buffer)
}

func failing(err error, bufSize int) (chan<- output.Item, <-chan error) {
	in := make(chan output.Item, bufSize)
	done := make(chan error, 1)
	go func() {
		drain(in)
		done <- err
	}()
	return in, done
}

func drain[T any](in <-chan T) {
	for range in {
	}
}
