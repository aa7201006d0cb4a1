// Package decoder is the boundary between genesmith and a gene-structure
// decoder.
//
// A decoder reads one sequence (a Job) and reports labeled paths through
// its model. It consults a ScoreFunc for every candidate coding sequence it
// considers; the Candidate Scorer supplies that function. Backends register
// a Loader under a scheme name and are opened with a model locator of the form
// "scheme:argument".
package decoder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"genesmith/core/gene"
)

// ScoreFunc rates a candidate coding sequence. When candidate is nil the
// candidate is the tbLen bases of full ending at pos (0-based, inclusive).
// It returns -Inf for candidates the decoder must never select.
type ScoreFunc func(full []byte, pos int, candidate []byte, tbLen int) float64

// Job is one input sequence.
type Job struct {
	ID  string
	Seq []byte
}

// Decoder produces labeled paths for a Job.
type Decoder interface {
	// Decode returns the single most likely path.
	Decode(ctx context.Context, job Job) (gene.Path, error)
	// Sample returns up to n independently drawn paths. No paths and no
	// error means the backend has no sampling data for job.
	Sample(ctx context.Context, job Job, n int) ([]gene.Path, error)
}

// JobLister is implemented by decoders that know their own inputs, so no
// sequence file is needed.
type JobLister interface {
	Jobs() []Job
}

// ErrNoPath is returned when a decoder has nothing to report for a job.
var ErrNoPath = errors.New("decoder: no path for sequence")

// ModelLoadError reports a model locator that could not be opened.
type ModelLoadError struct {
	Model string
	Err   error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load model %q: %v", e.Model, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// Loader opens the model named by arg for one backend.
type Loader func(arg string, cb ScoreFunc) (Decoder, error)

// DefaultScheme is used when a model has no registered scheme prefix.
const DefaultScheme = "trace"

var (
	regMu    sync.RWMutex
	registry = map[string]Loader{}
)

// Register makes a backend available under scheme. Registering the same
// scheme twice panics.
func Register(scheme string, l Loader) {
	regMu.Lock()
	defer regMu.Unlock()
	scheme = strings.ToLower(scheme)
	if _, dup := registry[scheme]; dup {
		panic("decoder: Register called twice for " + scheme)
	}
	registry[scheme] = l
}

// Schemes lists registered backends, sorted.
func Schemes() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Open resolves model to a backend and loads it. The model is "scheme",
// "scheme:arg", or anything else, which is handed whole to DefaultScheme.
// Every failure is a *ModelLoadError.
func Open(model string, cb ScoreFunc) (Decoder, error) {
	scheme, arg := DefaultScheme, model
	prefix, rest, _ := strings.Cut(model, ":")
	regMu.RLock()
	if _, ok := registry[strings.ToLower(prefix)]; ok && prefix != "" {
		scheme, arg = strings.ToLower(prefix), rest
	}
	l, ok := registry[scheme]
	regMu.RUnlock()
	if !ok {
		return nil, &ModelLoadError{Model: model, Err: fmt.Errorf("no decoder backend %q", scheme)}
	}
	d, err := l(arg, cb)
	if err != nil {
		var mle *ModelLoadError
		if errors.As(err, &mle) {
			return nil, err
		}
		return nil, &ModelLoadError{Model: model, Err: err}
	}
	return d, nil
}
