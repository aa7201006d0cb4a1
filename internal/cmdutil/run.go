package cmdutil

import (
	"context"

	"genesmith/core/decoder"
	"genesmith/internal/pipeline"
)

// RunStream runs the job pipeline, applies a visitor to every job, and
// streams its outputs via send. It returns the number of outputs sent and
// the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	lister decoder.JobLister,
	visit func(context.Context, decoder.Job) ([]T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachJob(ctx, cfg, seqFiles, lister, func(j decoder.Job) error {
		outs, err := visit(ctx, j)
		if err != nil {
			return err
		}
		for _, o := range outs {
			if err := send(o); err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, err
}
