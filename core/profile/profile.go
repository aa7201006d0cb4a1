// Package profile scores proteins against position-specific scoring
// matrices.
//
// A profile file is tab- or space-delimited. '#' starts a comment. The first
// data row lists one-letter residues; each following row holds one log-odds
// score per residue for one match column, optionally preceded by a column
// label:
//
//	# NAME kinase_N
//	    A     C     D  ...
//	1   0.1  -1.2   0.4 ...
//	2  -0.3   2.0  -1.0 ...
//
// Scores are ungapped: Global places the whole shorter sequence against the
// longer one at its best offset, Local takes the best-scoring contiguous
// segment over every diagonal.
package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// LoadError reports an unreadable or malformed profile file.
type LoadError struct {
	Path string
	Line int // 0 when the file could not be read at all
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("profile %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("profile %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Profile is an immutable scoring matrix of Len() columns.
type Profile struct {
	Name     string
	alphabet string
	index    [256]int8 // residue -> column of a row, -1 for unknown
	rows     [][]float64
	floor    []float64 // per-row score for residues outside the alphabet
}

// Len is the number of match columns.
func (p *Profile) Len() int { return len(p.rows) }

// Alphabet is the residue order of each row.
func (p *Profile) Alphabet() string { return p.alphabet }

// Load reads a profile from path.
func Load(path string) (*Profile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path)
}

// Parse reads a profile from r; name is used in errors and as the default
// profile name.
func Parse(r io.Reader, name string) (*Profile, error) {
	p := &Profile{Name: name}
	for i := range p.index {
		p.index[i] = -1
	}

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			if f := strings.Fields(line[1:]); len(f) >= 2 && strings.EqualFold(f[0], "NAME") {
				p.Name = f[1]
			}
			continue
		}
		f := strings.Fields(line)
		if p.alphabet == "" {
			if err := p.setAlphabet(f); err != nil {
				return nil, &LoadError{Path: name, Line: ln, Err: err}
			}
			continue
		}
		row, err := p.parseRow(f)
		if err != nil {
			return nil, &LoadError{Path: name, Line: ln, Err: err}
		}
		p.rows = append(p.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if len(p.rows) == 0 {
		return nil, &LoadError{Path: name, Err: errors.New("no match columns")}
	}
	p.floor = make([]float64, len(p.rows))
	for i, row := range p.rows {
		m := row[0]
		for _, v := range row[1:] {
			if v < m {
				m = v
			}
		}
		p.floor[i] = m
	}
	return p, nil
}

func (p *Profile) setAlphabet(f []string) error {
	var b strings.Builder
	for i, tok := range f {
		if len(tok) != 1 {
			return fmt.Errorf("header field %q is not a residue", tok)
		}
		c := strings.ToUpper(tok)[0]
		if p.index[c] >= 0 {
			return fmt.Errorf("residue %c listed twice", c)
		}
		p.index[c] = int8(i)
		p.index[c|0x20] = int8(i)
		b.WriteByte(c)
	}
	p.alphabet = b.String()
	return nil
}

func (p *Profile) parseRow(f []string) ([]float64, error) {
	k := len(p.alphabet)
	switch len(f) {
	case k:
	case k + 1:
		f = f[1:] // column label
	default:
		return nil, fmt.Errorf("want %d scores, got %d fields", k, len(f))
	}
	row := make([]float64, k)
	for i, tok := range f {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad score %q", tok)
		}
		row[i] = v
	}
	return row, nil
}

// Mode selects how a protein is placed against the profile.
type Mode uint8

const (
	Global Mode = iota
	Local
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "global"
}

// ParseMode accepts "global" or "local".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "glocal":
		return Global, nil
	case "local":
		return Local, nil
	}
	return Global, fmt.Errorf("unknown profile mode %q (want global|local)", s)
}

// Scorer adapts a Profile to a scoring mode. It is safe for concurrent use.
type Scorer struct {
	Profile *Profile
	Mode    Mode
}

// digitized residue buffers, held for one ScoreProtein call
var dsqPool = sync.Pool{
	New: func() any {
		b := make([]int8, 0, 1024)
		return &b
	},
}

// ScoreProtein implements score.ProfileScorer.
func (s Scorer) ScoreProtein(aa []byte) (float64, error) {
	p := s.Profile
	if p == nil {
		return 0, errors.New("profile: no profile loaded")
	}
	if len(aa) == 0 {
		return 0, nil
	}
	dp := dsqPool.Get().(*[]int8)
	defer func() {
		*dp = (*dp)[:0]
		dsqPool.Put(dp)
	}()
	dsq := (*dp)[:0]
	for _, c := range aa {
		dsq = append(dsq, p.index[c])
	}
	*dp = dsq

	if s.Mode == Local {
		return p.local(dsq), nil
	}
	return p.global(dsq), nil
}

func (p *Profile) at(row int, r int8) float64 {
	if r < 0 {
		return p.floor[row]
	}
	return p.rows[row][r]
}

// global returns the best full placement of the shorter sequence.
func (p *Profile) global(dsq []int8) float64 {
	m, l := len(p.rows), len(dsq)
	best := 0.0
	first := true
	if l >= m {
		for off := 0; off+m <= l; off++ {
			sum := 0.0
			for j := 0; j < m; j++ {
				sum += p.at(j, dsq[off+j])
			}
			if first || sum > best {
				best, first = sum, false
			}
		}
		return best
	}
	for off := 0; off+l <= m; off++ {
		sum := 0.0
		for i := 0; i < l; i++ {
			sum += p.at(off+i, dsq[i])
		}
		if first || sum > best {
			best, first = sum, false
		}
	}
	return best
}

// local returns the maximum-scoring ungapped segment over all diagonals;
// never below 0.
func (p *Profile) local(dsq []int8) float64 {
	m, l := len(p.rows), len(dsq)
	best := 0.0
	for d := -(l - 1); d < m; d++ {
		// diagonal: row j = i + d
		i := 0
		if d < 0 {
			i = -d
		}
		run := 0.0
		for ; i < l && i+d < m; i++ {
			run += p.at(i+d, dsq[i])
			if run < 0 {
				run = 0
			}
			if run > best {
				best = run
			}
		}
	}
	return best
}
