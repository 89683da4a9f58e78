package cmdutil

import (
	"context"

	"orfscan/internal/pipeline"
)

// RunStream runs the shared pipeline and streams every result into out.
// A send blocked on a slow writer gives up when ctx is canceled.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	proc pipeline.Processor[T],
	onErr pipeline.OnError,
	out chan<- T,
) (pipeline.Stats, error) {
	return pipeline.ForEach(ctx, cfg, seqFiles, proc, onErr, func(x T) error {
		select {
		case out <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
