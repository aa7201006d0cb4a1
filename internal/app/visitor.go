package app

import (
	"context"
	"errors"

	"genesmith/core/aggregate"
	"genesmith/core/decoder"
	"genesmith/core/gene"
)

// Visitor turns one sequence into CDS records: the single best path when
// Reps is 0, otherwise the isoforms of Reps sampled paths. Isoforms are
// listed in index order, or by descending support when Rank is set.
type Visitor struct {
	Decoder    decoder.Decoder
	Extractor  *gene.Extractor
	Reps       int
	MinSupport float64
	Rank       bool
	Warn       func(format string, a ...any)
}

func (v Visitor) Visit(ctx context.Context, job decoder.Job) ([]gene.CDSRecord, error) {
	if v.Reps > 0 {
		paths, err := v.Decoder.Sample(ctx, job, v.Reps)
		if err != nil {
			return v.skip(job, err)
		}
		if len(paths) > 0 {
			isos, err := aggregate.Aggregate(v.Extractor, paths)
			if errors.Is(err, aggregate.ErrNoSamples) {
				return nil, nil
			}
			isos = aggregate.MinSupport(isos, v.MinSupport)
			if v.Rank {
				isos = aggregate.ByFrequency(isos)
			}
			return aggregate.Records(isos), err
		}
		// no sampling data: fall back to the best path
	}
	p, err := v.Decoder.Decode(ctx, job)
	if err != nil {
		return v.skip(job, err)
	}
	return v.Extractor.Extract(p), nil
}

func (v Visitor) skip(job decoder.Job, err error) ([]gene.CDSRecord, error) {
	if !errors.Is(err, decoder.ErrNoPath) {
		return nil, err
	}
	if v.Warn != nil {
		v.Warn("%s: no decoded path; skipped", job.ID)
	}
	return nil, nil
}
