// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"

	"genesmith/core/decoder"
	"genesmith/core/fasta"
	"genesmith/core/gene"
	"genesmith/internal/runutil"
)

// ErrNoInput is returned when there are neither sequence files nor a job
// lister.
var ErrNoInput = errors.New("no input sequences: give a FASTA file or a decoder that lists its jobs")

// Config controls job iteration.
type Config struct {
	Warn      func(format string, a ...any) // duplicate-id diagnostics; may be nil
	DedupeCap int                           // job ids remembered for duplicate detection (0 = default)
}

// ForEachJob calls visit for every job, in input order. Cancellation is
// checked between jobs; the first error (including ctx.Err()) stops the run
// and is returned. Job ids are normalized with gene.GeneID.
func ForEachJob(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	lister decoder.JobLister,
	visit func(decoder.Job) error,
) error {
	seen := runutil.NewLRUSet[string](cfg.DedupeCap)
	one := func(j decoder.Job) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		j.ID = gene.GeneID(j.ID)
		if seen.Add(j.ID) && cfg.Warn != nil {
			cfg.Warn("duplicate sequence id %q", j.ID)
		}
		return visit(j)
	}

	if len(seqFiles) == 0 {
		if lister == nil {
			return ErrNoInput
		}
		for _, j := range lister.Jobs() {
			if err := one(j); err != nil {
				return err
			}
		}
		return nil
	}

	for _, fa := range seqFiles {
		err := fasta.ScanPath(ctx, fa, func(r fasta.Record) error {
			return one(decoder.Job{ID: r.ID, Seq: r.Seq})
		})
		if err != nil {
			return err
		}
	}
	return nil
}
