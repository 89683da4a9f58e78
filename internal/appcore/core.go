// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/klauspost/pgzip"

	"orfscan-core/seq"
	"orfscan/internal/cmdutil"
	"orfscan/internal/fasta"
	"orfscan/internal/output"
	"orfscan/internal/pipeline"
	"orfscan/internal/runutil"
	"orfscan/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

type Options struct {
	SeqFiles []string

	Threads int

	SkipInvalid     bool
	Gzip            bool
	NoMatchExitCode int

	// Noun names the emitted items in the summary ("translation", "ORF").
	Noun string
}

type Starter interface {
	Start(out io.Writer, bufSize int) (chan<- output.Item, <-chan error)
}

// Run streams every input record through proc into the writer built by wf
// and maps the outcome to an exit code.
func Run(
	parent context.Context,
	stdout io.Writer,
	logger *log.Logger,
	o Options,
	proc pipeline.Processor[output.Item],
	wf Starter,
) int {
	if len(o.SeqFiles) == 0 {
		o.SeqFiles = []string{"-"}
	}
	thr := runutil.EffectiveThreads(o.Threads)
	h := runutil.HostInfo()
	logger.Debug("host", "cpu", h.Brand, "logical_cpus", h.LogicalCPUs,
		"threads_per_core", h.ThreadsPerCore, "memory_gib", h.MemoryBytes>>30, "workers", thr)

	outw := bufio.NewWriter(stdout)
	var dst io.Writer = outw
	var gz *pgzip.Writer
	if o.Gzip {
		gz = pgzip.NewWriter(outw)
		dst = gz
	}

	inCh, writeErr := wf.Start(dst, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	onErr := func(rec fasta.Record, err error) error {
		var ae *seq.AlphabetError
		if o.SkipInvalid && errors.As(err, &ae) {
			logger.Warn("skipping record", "id", rec.ID, "err", err)
			return nil
		}
		return err
	}

	st, perr := cmdutil.RunStream[output.Item](
		ctx,
		pipeline.Config{Threads: thr},
		o.SeqFiles,
		warnDuplicateIDs(proc, logger),
		onErr,
		inCh,
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		logger.Error("write failed", "err", werr)
		return ExitFailure
	}
	if gz != nil {
		if e := gz.Close(); writers.IsBrokenPipe(e) {
			return ExitOK
		} else if e != nil {
			logger.Error("gzip output", "err", e)
			return ExitFailure
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		logger.Error("write failed", "err", e)
		return ExitFailure
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		logger.Error(perr)
		return ExitFailure
	}
	logger.Info(runutil.Summary(st.Records, st.Rejected, st.Emitted, o.Noun))
	if st.Emitted == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
