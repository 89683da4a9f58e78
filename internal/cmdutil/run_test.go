package cmdutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orfscan/internal/fasta"
	"orfscan/internal/pipeline"
)

func TestRunStream(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">a\nAC\n>b\nACGT\n"), 0o644))

	out := make(chan int, 4)
	st, err := RunStream[int](context.Background(), pipeline.Config{Threads: 2}, []string{fn},
		pipeline.ProcessorFunc[int](func(r fasta.Record) ([]int, error) { return []int{len(r.Seq)}, nil }),
		nil, out)
	require.NoError(t, err)
	close(out)
	var got []int
	for v := range out {
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 4}, got)
	assert.Equal(t, 2, st.Emitted)
}
