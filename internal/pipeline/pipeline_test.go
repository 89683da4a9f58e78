package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orfscan/internal/fasta"
)

func writeFASTA(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, ">r%d\n%s\n", i, strings.Repeat("ACGT", i%7+1))
	}
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(b.String()), 0o644))
	return fn
}

// echo emits the record id once per 4 bases.
var echo = ProcessorFunc[string](func(rec fasta.Record) ([]string, error) {
	out := make([]string, len(rec.Seq)/4)
	for i := range out {
		out[i] = fmt.Sprintf("%s.%d", rec.ID, i)
	}
	return out, nil
})

func run(t *testing.T, threads int, files []string, proc Processor[string], onErr OnError) ([]string, Stats, error) {
	t.Helper()
	var got []string
	st, err := ForEach(context.Background(), Config{Threads: threads}, files, proc, onErr, func(s string) error {
		got = append(got, s)
		return nil
	})
	return got, st, err
}

func TestForEach_ParallelMatchesSerialOrder(t *testing.T) {
	fn := writeFASTA(t, 200)
	serial, st, err := run(t, 1, []string{fn}, echo, nil)
	require.NoError(t, err)
	assert.Equal(t, 200, st.Records)
	assert.Equal(t, len(serial), st.Emitted)

	parallel, _, err := run(t, 8, []string{fn}, echo, nil)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
	assert.Equal(t, "r0.0", serial[0])
}

func TestForEach_MultipleFilesKeepOrder(t *testing.T) {
	a, b := writeFASTA(t, 3), writeFASTA(t, 2)
	got, st, err := run(t, 4, []string{a, b}, echo, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Records)
	assert.Equal(t, "r0.0", got[0])
	assert.Equal(t, "r1.1", got[2])
}

var errBad = errors.New("bad record")

var rejectOdd = ProcessorFunc[string](func(rec fasta.Record) ([]string, error) {
	var n int
	_, _ = fmt.Sscanf(rec.ID, "r%d", &n)
	if n%2 == 1 {
		return nil, errBad
	}
	return []string{rec.ID}, nil
})

func TestForEach_StopsOnFirstError(t *testing.T) {
	fn := writeFASTA(t, 50)
	got, _, err := run(t, 4, []string{fn}, rejectOdd, nil)
	require.ErrorIs(t, err, errBad)
	assert.Equal(t, []string{"r0"}, got)
}

func TestForEach_OnErrorSkips(t *testing.T) {
	fn := writeFASTA(t, 10)
	var skipped []string
	got, st, err := run(t, 3, []string{fn}, rejectOdd, func(rec fasta.Record, err error) error {
		skipped = append(skipped, rec.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"r0", "r2", "r4", "r6", "r8"}, got)
	assert.Equal(t, []string{"r1", "r3", "r5", "r7", "r9"}, skipped)
	assert.Equal(t, Stats{Records: 10, Rejected: 5, Emitted: 5}, st)
}

func TestForEach_VisitErrorStops(t *testing.T) {
	fn := writeFASTA(t, 100)
	stop := errors.New("writer closed")
	n := 0
	_, err := ForEach(context.Background(), Config{Threads: 4}, []string{fn}, echo, nil, func(string) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, n)
}

func TestForEach_MissingFile(t *testing.T) {
	_, _, err := run(t, 2, []string{filepath.Join(t.TempDir(), "missing.fa")}, echo, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestForEach_Canceled(t *testing.T) {
	fn := writeFASTA(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ForEach(ctx, Config{Threads: 2}, []string{fn}, echo, nil, func(string) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestForEach_SlowRecordBoundsInFlight(t *testing.T) {
	fn := writeFASTA(t, 100)
	gate := make(chan struct{})
	var started atomic.Int32
	slow := ProcessorFunc[string](func(rec fasta.Record) ([]string, error) {
		if rec.ID == "r0" {
			<-gate
		} else {
			started.Add(1)
		}
		return []string{rec.ID}, nil
	})

	type out struct {
		got []string
		err error
	}
	done := make(chan out, 1)
	go func() {
		var got []string
		_, err := ForEach(context.Background(), Config{Threads: 4, Buffer: 8}, []string{fn}, slow, nil, func(s string) error {
			got = append(got, s)
			return nil
		})
		done <- out{got, err}
	}()

	time.Sleep(100 * time.Millisecond)
	// r0 holds one of the 8 slots
	assert.LessOrEqual(t, started.Load(), int32(7))
	close(gate)

	res := <-done
	require.NoError(t, res.err)
	require.Len(t, res.got, 100)
	assert.Equal(t, "r0", res.got[0])
	assert.Equal(t, "r99", res.got[99])
}
