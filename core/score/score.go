// Package score rates candidate coding sequences for a gene decoder.
//
// A Scorer is handed to the decoder as its per-candidate callback. Each call
// translates the candidate, rejects it unless the protein ends in exactly one
// stop codon, and otherwise combines weighted similarity terms from the
// configured collaborators. Nothing in a call is fatal: invalid candidates
// and collaborator failures both come back as Reject.
package score

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"genesmith/core/codon"
	"genesmith/core/decoder"
	"genesmith/core/translate"
)

// Reject is the score of a candidate the decoder must never select.
var Reject = math.Inf(-1)

// ProfileScorer scores a protein against a profile model. Implementations
// must not retain aa after returning.
type ProfileScorer interface {
	ScoreProtein(aa []byte) (float64, error)
}

// PairwiseAligner scores a protein against a reference protein.
// Implementations must not retain aa or ref after returning.
type PairwiseAligner interface {
	Align(aa, ref []byte) (float64, error)
}

// Weights scale each similarity term.
type Weights struct {
	Profile   float64
	Alignment float64
}

// DefaultWeights weighs both terms equally.
func DefaultWeights() Weights { return Weights{Profile: 1, Alignment: 1} }

// Config is fixed for the lifetime of a Scorer.
type Config struct {
	Code    *codon.Code // nil means the standard code
	Weights Weights

	// Either collaborator may be nil; its term then contributes 0.
	Profile   ProfileScorer
	Aligner   PairwiseAligner
	Reference []byte // reference protein for Aligner

	CacheSize int // memoized candidates; 0 disables the cache

	Warn func(format string, a ...any) // failure diagnostics; may be nil
}

// Scorer is safe for concurrent use.
type Scorer struct {
	cfg   Config
	cache *lru.Cache[string, Result]
	stats stats
}

type stats struct {
	evaluated, accepted, invalid, failed, cacheHits atomic.Int64
}

// Stats is a snapshot of a Scorer's counters.
type Stats struct {
	Evaluated int64
	Accepted  int64
	Invalid   int64
	Failed    int64
	CacheHits int64
}

// New validates cfg and returns a Scorer.
func New(cfg Config) (*Scorer, error) {
	if cfg.Code == nil {
		cfg.Code = codon.Default()
	}
	if cfg.Aligner != nil && len(cfg.Reference) == 0 {
		return nil, errors.New("score: aligner configured without a reference protein")
	}
	cfg.Reference = append([]byte(nil), cfg.Reference...)
	s := &Scorer{cfg: cfg}
	if cfg.CacheSize > 0 {
		c, err := lru.New[string, Result](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("score: cache: %w", err)
		}
		s.cache = c
	}
	return s, nil
}

// Code is the genetic code candidates are translated with.
func (s *Scorer) Code() *codon.Code { return s.cfg.Code }

// Score returns the fitness of candidate, or Reject.
func (s *Scorer) Score(candidate []byte) float64 {
	return s.Evaluate(candidate).Score
}

// Callback adapts the Scorer to the decoder's scoring hook. When candidate is
// nil the candidate is the tbLen bases of full ending at pos.
func (s *Scorer) Callback() decoder.ScoreFunc {
	return func(full []byte, pos int, candidate []byte, tbLen int) float64 {
		if candidate == nil {
			start := pos - tbLen + 1
			if tbLen <= 0 || start < 0 || pos >= len(full) {
				return Reject
			}
			candidate = full[start : pos+1]
		}
		return s.Score(candidate)
	}
}

// Evaluate scores candidate and reports why it was rejected, if it was.
func (s *Scorer) Evaluate(candidate []byte) Result {
	s.stats.evaluated.Add(1)
	if s.cache != nil {
		if r, ok := s.cache.Get(string(candidate)); ok {
			s.stats.cacheHits.Add(1)
			s.count(r)
			return r
		}
	}
	r := s.evaluate(candidate)
	s.count(r)
	if s.cache != nil && r.Verdict != ScoringFailure {
		s.cache.Add(string(candidate), r)
	}
	if r.Verdict == ScoringFailure && s.cfg.Warn != nil {
		s.cfg.Warn("candidate rejected: %v", r.Err)
	}
	return r
}

func (s *Scorer) count(r Result) {
	switch r.Verdict {
	case Accepted:
		s.stats.accepted.Add(1)
	case InvalidTranslation:
		s.stats.invalid.Add(1)
	case ScoringFailure:
		s.stats.failed.Add(1)
	}
}

// Stats returns the current counters.
func (s *Scorer) Stats() Stats {
	return Stats{
		Evaluated: s.stats.evaluated.Load(),
		Accepted:  s.stats.accepted.Load(),
		Invalid:   s.stats.invalid.Load(),
		Failed:    s.stats.failed.Load(),
		CacheHits: s.stats.cacheHits.Load(),
	}
}

// Translation buffers live for exactly one evaluation.
var proteinPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 1024)
		return &b
	},
}

func (s *Scorer) evaluate(candidate []byte) Result {
	bp := proteinPool.Get().(*[]byte)
	defer func() {
		*bp = (*bp)[:0]
		proteinPool.Put(bp)
	}()

	aa := translate.AppendTranslate((*bp)[:0], s.cfg.Code, candidate)
	*bp = aa
	if err := ValidateStops(aa); err != nil {
		return Result{Score: Reject, Verdict: InvalidTranslation, Err: err}
	}
	protein := aa[:len(aa)-1]

	total := 0.0
	if s.cfg.Profile != nil {
		v, err := guard("profile", func() (float64, error) { return s.cfg.Profile.ScoreProtein(protein) })
		if err != nil {
			return Result{Score: Reject, Verdict: ScoringFailure, Err: err}
		}
		total += s.cfg.Weights.Profile * v
	}
	if s.cfg.Aligner != nil {
		v, err := guard("alignment", func() (float64, error) { return s.cfg.Aligner.Align(protein, s.cfg.Reference) })
		if err != nil {
			return Result{Score: Reject, Verdict: ScoringFailure, Err: err}
		}
		total += s.cfg.Weights.Alignment * v
	}
	return Result{Score: total, Verdict: Accepted}
}

// guard runs one collaborator call, turning errors, panics and NaN scores
// into a *FailureError.
func guard(name string, fn func() (float64, error)) (v float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = 0, &FailureError{Scorer: name, Err: fmt.Errorf("panic: %v", p)}
		}
	}()
	v, err = fn()
	switch {
	case err != nil:
		return 0, &FailureError{Scorer: name, Err: err}
	case math.IsNaN(v):
		return 0, &FailureError{Scorer: name, Err: errors.New("score is NaN")}
	}
	return v, nil
}

// ValidateStops accepts a protein with exactly one stop, in the last position.
func ValidateStops(aa []byte) error {
	n := 0
	for _, c := range aa {
		if codon.IsStop(c) {
			n++
		}
	}
	switch {
	case n == 0:
		return fmt.Errorf("%w: no stop codon", ErrInvalidTranslation)
	case n > 1:
		return fmt.Errorf("%w: %d stop codons", ErrInvalidTranslation, n)
	case !codon.IsStop(aa[len(aa)-1]):
		return fmt.Errorf("%w: internal stop codon", ErrInvalidTranslation)
	}
	return nil
}
