package score

import (
	"errors"
	"fmt"
)

// ErrInvalidTranslation marks a candidate whose protein breaks the stop rule.
var ErrInvalidTranslation = errors.New("invalid translation")

// FailureError is a collaborator failure during scoring.
type FailureError struct {
	Scorer string // "profile" or "alignment"
	Err    error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s scoring failed: %v", e.Scorer, e.Err)
}

func (e *FailureError) Unwrap() error { return e.Err }

// Verdict is the outcome class of one evaluation.
type Verdict uint8

const (
	Accepted Verdict = iota
	InvalidTranslation
	ScoringFailure
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case InvalidTranslation:
		return "invalid_translation"
	case ScoringFailure:
		return "scoring_failure"
	}
	return "unknown"
}

// Result is the outcome of one evaluation. Score is Reject unless Verdict is
// Accepted; Err explains rejections.
type Result struct {
	Score   float64
	Verdict Verdict
	Err     error
}

// Accepted reports whether the candidate was scored normally.
func (r Result) Accepted() bool { return r.Verdict == Accepted }
