// internal/pipeline/processor.go
package pipeline

import "orfscan/internal/fasta"

// Processor is the minimal capability the pipeline needs.
// Any scanner (including fakes in tests) can satisfy this.
type Processor[T any] interface {
	Process(rec fasta.Record) ([]T, error)
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc[T any] func(fasta.Record) ([]T, error)

func (f ProcessorFunc[T]) Process(rec fasta.Record) ([]T, error) { return f(rec) }
