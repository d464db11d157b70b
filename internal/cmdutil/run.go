package cmdutil

import (
	"context"

	"strmatch-core/sequence"
	"strmatch/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	seqFiles []string,
	visit func(sequence.Sample) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachSample(ctx, seqFiles, func(s sequence.Sample) error {
		keep, out, vErr := visit(s)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
