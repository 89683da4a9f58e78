// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"orfscan/internal/fasta"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
	Buffer  int // records in flight (and channel depth); 0 means Threads*4
}

// Stats summarizes a run.
type Stats struct {
	Records  int // records read
	Rejected int // records whose Process error was forgiven by OnError
	Emitted  int // results passed to visit
}

// OnError decides what happens when Process fails for a record. Returning
// nil skips the record; returning an error stops the run with it. A nil
// OnError stops on the first failure.
type OnError func(rec fasta.Record, err error) error

type job struct {
	idx int
	rec fasta.Record
}

type result[T any] struct {
	idx   int
	rec   fasta.Record
	items []T
	err   error
}

// ForEach reads every record of seqFiles, runs proc on it across cfg.Threads
// workers, and calls visit for each produced item. Items reach visit in the
// order their records appear in the input, whatever the thread count.
// At most cfg.Buffer records are between the reader and visit at any time,
// so one slow record cannot make the collector hold the rest of the input.
// It returns the first error encountered (including context cancellation).
func ForEach[T any](
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	proc Processor[T],
	onErr OnError,
	visit func(T) error,
) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = cfg.Threads * 4
	}
	if onErr == nil {
		onErr = func(_ fasta.Record, err error) error { return err }
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, cfg.Buffer)
	results := make(chan result[T], cfg.Buffer)
	readErr := make(chan error, 1)
	// one slot per record not yet handed to visit
	slots := make(chan struct{}, cfg.Buffer)

	// Feed work
	go func() {
		defer close(jobs)
		idx := 0
		for _, fa := range seqFiles {
			err := fasta.StreamPathCtx(runCtx, fa, func(rec fasta.Record) error {
				select {
				case slots <- struct{}{}:
				case <-runCtx.Done():
					return runCtx.Err()
				}
				select {
				case jobs <- job{idx: idx, rec: rec}:
					idx++
					return nil
				case <-runCtx.Done():
					return runCtx.Err()
				}
			})
			if err != nil {
				readErr <- err
				return
			}
		}
		readErr <- nil
	}()

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-runCtx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					items, err := proc.Process(j.rec)
					select {
					case results <- result[T]{idx: j.idx, rec: j.rec, items: items, err: err}:
					case <-runCtx.Done():
						return
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: re-sequence and visit
	var (
		st      Stats
		first   error
		next    int
		pending = make(map[int]result[T])
	)
	fail := func(err error) {
		if first == nil {
			first = err
			cancel()
		}
	}
	for r := range results {
		if first != nil {
			continue
		}
		pending[r.idx] = r
		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			<-slots
			next++
			st.Records++
			if cur.err != nil {
				if err := onErr(cur.rec, cur.err); err != nil {
					fail(err)
					break
				}
				st.Rejected++
				continue
			}
			for _, it := range cur.items {
				if err := visit(it); err != nil {
					fail(err)
					break
				}
				st.Emitted++
			}
			if first != nil {
				break
			}
		}
	}

	rerr := <-readErr
	if first != nil {
		return st, first
	}
	if err := ctx.Err(); err != nil {
		return st, err
	}
	return st, rerr
}
