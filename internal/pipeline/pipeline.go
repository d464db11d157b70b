// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"strmatch-core/sequence"
)

// ForEachSample reads seqFiles in order and calls visit for each sample.
// It returns the first error encountered (including context cancellation).
func ForEachSample(ctx context.Context, seqFiles []string, visit func(sequence.Sample) error) error {
	for _, path := range seqFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := sequence.ReadPathCtx(ctx, path, func(s sequence.Sample) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return visit(s)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
