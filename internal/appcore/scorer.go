package appcore

import (
	"bytes"
	"context"
	"fmt"

	"genesmith/core/align"
	"genesmith/core/codon"
	"genesmith/core/fasta"
	"genesmith/core/profile"
	"genesmith/core/score"
	"genesmith/internal/clibase"
	"genesmith/internal/cmdutil"
)

// BuildScorer assembles the candidate scorer from the shared scoring flags.
// An unreadable codon table only warns; every other failure is a
// configuration error (exit 2).
func BuildScorer(ctx context.Context, c clibase.Common, log cmdutil.Logger) (*score.Scorer, error) {
	cfg := score.Config{
		Code:      codon.LoadOrDefault(c.CodeFile, log.Warnf),
		Weights:   score.Weights{Profile: c.ProfileWeight, Alignment: c.ProteinWeight},
		CacheSize: c.CacheSize,
		Warn:      log.Warnf,
	}

	if c.ProfileFile != "" {
		p, err := profile.Load(c.ProfileFile)
		if err != nil {
			return nil, err
		}
		mode, err := profile.ParseMode(c.ProfileMode)
		if err != nil {
			return nil, err
		}
		cfg.Profile = profile.Scorer{Profile: p, Mode: mode}
	}

	if c.ProteinFile != "" {
		m, err := align.Lookup(c.Matrix)
		if err != nil {
			return nil, err
		}
		ref, err := fasta.First(ctx, c.ProteinFile)
		if err != nil {
			return nil, fmt.Errorf("reference protein: %w", err)
		}
		cfg.Reference = bytes.TrimRight(ref.Seq, "*")
		if len(cfg.Reference) == 0 {
			return nil, fmt.Errorf("reference protein %s: empty sequence", c.ProteinFile)
		}
		cfg.Aligner = align.Aligner{Matrix: m}
	}

	return score.New(cfg)
}

// LogStats writes the scorer's end-of-run counters as one INFO line.
func LogStats(log cmdutil.Logger, s *score.Scorer) {
	st := s.Stats()
	if st.Evaluated == 0 {
		return
	}
	log.Infof("scored %d candidates: %d accepted, %d invalid, %d failed, %d cache hits",
		st.Evaluated, st.Accepted, st.Invalid, st.Failed, st.CacheHits)
}
