package decoder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"genesmith/core/fasta"
	"genesmith/core/gene"
)

func init() {
	Register("trace", func(arg string, cb ScoreFunc) (Decoder, error) {
		return LoadReplay(arg, cb)
	})
}

// Replay serves paths previously dumped by a decoder.
//
// The dump is GFF-like, one interval per line:
//
//	seqid  source  label  start  end  score  strand  [...]
//
// A line "###" ends a path; a change of seqid also starts a new one. Other
// '#' lines are comments. A score of "." reads as 0. Paths are grouped by
// sequence id (see gene.GeneID) in dump order: Decode returns the first path
// of a sequence and Sample the first n.
type Replay struct {
	paths map[string][]gene.Path
	order []string
	cb    ScoreFunc
}

// LoadReplay reads a dump from path ("-" is stdin; gzip is detected).
func LoadReplay(path string, cb ScoreFunc) (*Replay, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	r, err := ParseReplay(rc, cb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ParseReplay reads a dump from r.
func ParseReplay(r io.Reader, cb ScoreFunc) (*Replay, error) {
	rp := &Replay{paths: map[string][]gene.Path{}, cb: cb}
	var (
		cur   gene.Path
		curID string
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if _, seen := rp.paths[curID]; !seen {
			rp.order = append(rp.order, curID)
		}
		rp.paths[curID] = append(rp.paths[curID], cur)
		cur, curID = nil, ""
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "###") {
			flush()
			continue
		}
		if line[0] == '#' {
			continue
		}
		iv, err := parseInterval(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		id := gene.GeneID(iv.SequenceID)
		if len(cur) > 0 && id != curID {
			flush()
		}
		curID = id
		cur = append(cur, iv)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return rp, nil
}

func parseInterval(line string) (gene.Interval, error) {
	f := strings.Fields(line)
	if len(f) < 7 {
		return gene.Interval{}, fmt.Errorf("want at least 7 fields, got %d", len(f))
	}
	start, err := strconv.Atoi(f[3])
	if err != nil {
		return gene.Interval{}, fmt.Errorf("bad start %q", f[3])
	}
	end, err := strconv.Atoi(f[4])
	if err != nil {
		return gene.Interval{}, fmt.Errorf("bad end %q", f[4])
	}
	score := 0.0
	if f[5] != "." {
		if score, err = strconv.ParseFloat(f[5], 64); err != nil {
			return gene.Interval{}, fmt.Errorf("bad score %q", f[5])
		}
	}
	return gene.Interval{
		SequenceID: f[0],
		Label:      f[2],
		Start:      start,
		End:        end,
		Score:      score,
		Strand:     f[6],
	}, nil
}

// Jobs lists every sequence in the dump, in order of first appearance. The
// jobs carry no sequence.
func (r *Replay) Jobs() []Job {
	out := make([]Job, len(r.order))
	for i, id := range r.order {
		out[i] = Job{ID: id}
	}
	return out
}

// Decode returns the first dumped path of job.
func (r *Replay) Decode(ctx context.Context, job Job) (gene.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ps := r.paths[gene.GeneID(job.ID)]
	if len(ps) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoPath, job.ID)
	}
	return ps[0], nil
}

// Sample returns the first n dumped paths of job, or all of them when fewer
// were dumped. A job with a single dumped path holds a decoded, not a
// sampled, path: asked for more than one sample, Sample returns none.
func (r *Replay) Sample(ctx context.Context, job Job, n int) ([]gene.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ps := r.paths[gene.GeneID(job.ID)]
	if len(ps) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoPath, job.ID)
	}
	if len(ps) == 1 && n > 1 {
		return nil, nil
	}
	if n < len(ps) {
		ps = ps[:n]
	}
	return ps, nil
}
