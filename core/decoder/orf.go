package decoder

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"genesmith/core/codon"
	"genesmith/core/gene"
)

func init() {
	Register("orf", func(arg string, cb ScoreFunc) (Decoder, error) {
		opt, err := ParseORFOptions(arg)
		if err != nil {
			return nil, err
		}
		return NewORF(opt, cb)
	})
}

// ORFOptions configures the ORF decoder.
type ORFOptions struct {
	MinAA       int     // shortest protein considered, stop excluded
	Seed        uint64  // sampling seed; draws also depend on the job id
	Temperature float64 // softmax temperature over candidate scores
	Code        *codon.Code
	TableStarts bool // use the code's start codons instead of ATG alone
}

// DefaultORFOptions returns the options used for a bare "orf" model.
func DefaultORFOptions() ORFOptions {
	return ORFOptions{MinAA: 30, Seed: 1, Temperature: 1, Code: codon.Default()}
}

// ParseORFOptions reads comma-separated key=value pairs: minaa, seed, temp,
// code (an NCBI table number or a codon table file) and starts (atg or
// table). Empty input yields the defaults.
func ParseORFOptions(arg string) (ORFOptions, error) {
	opt := DefaultORFOptions()
	for _, kv := range strings.Split(arg, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return opt, fmt.Errorf("orf option %q is not key=value", kv)
		}
		var err error
		switch strings.ToLower(k) {
		case "minaa":
			opt.MinAA, err = strconv.Atoi(v)
		case "seed":
			opt.Seed, err = strconv.ParseUint(v, 10, 64)
		case "temp":
			opt.Temperature, err = strconv.ParseFloat(v, 64)
		case "code":
			opt.Code, err = codon.Lookup(v)
		case "starts":
			switch strings.ToLower(v) {
			case "atg":
				opt.TableStarts = false
			case "table":
				opt.TableStarts = true
			default:
				err = fmt.Errorf("want atg or table, got %q", v)
			}
		default:
			return opt, fmt.Errorf("unknown orf option %q", k)
		}
		if err != nil {
			return opt, fmt.Errorf("orf option %s: %w", k, err)
		}
	}
	return opt, nil
}

// ORF is a minimal single-exon decoder for the forward strand. Every
// start..stop open reading frame preceded by at least one base is a candidate;
// each is rated through the ScoreFunc and rejected candidates are dropped.
// Decode picks the best candidate, Sample draws candidates with probability
// proportional to exp(score/temperature). With no surviving candidate the
// path is a single intergenic interval.
type ORF struct {
	opt ORFOptions
	cb  ScoreFunc
}

// NewORF validates opt and returns an ORF decoder.
func NewORF(opt ORFOptions, cb ScoreFunc) (*ORF, error) {
	if cb == nil {
		return nil, fmt.Errorf("orf decoder needs a score function")
	}
	if opt.MinAA < 1 {
		return nil, fmt.Errorf("orf minaa must be >= 1, got %d", opt.MinAA)
	}
	if !(opt.Temperature > 0) {
		return nil, fmt.Errorf("orf temp must be > 0, got %v", opt.Temperature)
	}
	if opt.Code == nil {
		opt.Code = codon.Default()
	}
	return &ORF{opt: opt, cb: cb}, nil
}

type orfHit struct {
	start, end int // 0-based, end exclusive, stop codon included
	score      float64
}

var atgOnly = func() *codon.Code {
	c, _ := codon.Parse(strings.NewReader("M\tATG\n"), "atg")
	return c
}()

func (o *ORF) isStart(b []byte) bool {
	if o.opt.TableStarts {
		return o.opt.Code.IsStart(b)
	}
	return atgOnly.IsStart(b)
}

// candidates scans the three forward frames.
func (o *ORF) candidates(ctx context.Context, seq []byte) ([]orfHit, error) {
	var hits []orfHit
	for frame := 0; frame < 3; frame++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var starts []int
		for i := frame; i+3 <= len(seq); i += 3 {
			if codon.IsStop(o.opt.Code.TranslateCodon(seq[i : i+3])) {
				for _, s := range starts {
					end := i + 3
					if (end-s)/3-1 < o.opt.MinAA {
						continue
					}
					v := o.cb(seq, end-1, nil, end-s)
					if math.IsInf(v, -1) || math.IsNaN(v) {
						continue
					}
					hits = append(hits, orfHit{start: s, end: end, score: v})
				}
				starts = starts[:0]
				continue
			}
			if i > 0 && o.isStart(seq[i:i+3]) {
				starts = append(starts, i)
			}
		}
	}
	return hits, nil
}

func (o *ORF) path(job Job, h *orfHit) gene.Path {
	n := len(job.Seq)
	if h == nil {
		return gene.Path{{Label: "inter", Start: 1, End: n, Strand: "+", SequenceID: job.ID}}
	}
	iv := func(label string, start, end int, score float64) gene.Interval {
		return gene.Interval{Label: label, Start: start, End: end, Score: score, Strand: "+", SequenceID: job.ID}
	}
	s, e := h.start, h.end
	p := gene.Path{
		iv("inter", 1, s, 0),
		iv("start", s+1, s+3, h.score),
	}
	if e-3 >= s+4 {
		p = append(p, iv("cds", s+4, e-3, h.score))
	}
	p = append(p,
		iv("stop1", e-2, e-1, h.score),
		iv("stop2", e, e, h.score),
	)
	if e < n {
		p = append(p, iv("inter", e+1, n, 0))
	}
	return p
}

// Decode returns the path through the best-scoring candidate; ties go to the
// leftmost.
func (o *ORF) Decode(ctx context.Context, job Job) (gene.Path, error) {
	if len(job.Seq) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoPath, job.ID)
	}
	hits, err := o.candidates(ctx, job.Seq)
	if err != nil {
		return nil, err
	}
	var best *orfHit
	for i := range hits {
		h := &hits[i]
		if best == nil || h.score > best.score || (h.score == best.score && h.start < best.start) {
			best = h
		}
	}
	return o.path(job, best), nil
}

// Sample draws n paths. Draws are reproducible for a given seed and job id.
func (o *ORF) Sample(ctx context.Context, job Job, n int) ([]gene.Path, error) {
	if len(job.Seq) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoPath, job.ID)
	}
	hits, err := o.candidates(ctx, job.Seq)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		out := make([]gene.Path, n)
		for i := range out {
			out[i] = o.path(job, nil)
		}
		return out, nil
	}

	top := hits[0].score
	for _, h := range hits[1:] {
		top = math.Max(top, h.score)
	}
	cum := make([]float64, len(hits))
	sum := 0.0
	for i, h := range hits {
		sum += math.Exp((h.score - top) / o.opt.Temperature)
		cum[i] = sum
	}

	hs := fnv.New64a()
	_, _ = hs.Write([]byte(job.ID))
	rng := rand.New(rand.NewPCG(o.opt.Seed, hs.Sum64()))

	out := make([]gene.Path, 0, n)
	for i := 0; i < n; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		x := rng.Float64() * sum
		k := 0
		for k < len(cum)-1 && cum[k] <= x {
			k++
		}
		out = append(out, o.path(job, &hits[k]))
	}
	return out, nil
}
