// Package align scores a protein against a reference with a substitution
// matrix.
//
// The score is the best ungapped local segment over every diagonal of the
// two sequences, in the manner of a seed-and-extend anchor search. There is no
// gapped dynamic programming here; plug a full aligner in through
// score.PairwiseAligner when indels matter.
package align

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Matrix is an immutable substitution matrix.
type Matrix struct {
	Name    string
	index   [256]int8
	scores  [][]int
	unknown int // score for residues outside the matrix alphabet
}

// Score returns the substitution score of a against b.
func (m *Matrix) Score(a, b byte) int {
	i, j := m.index[a], m.index[b]
	if i < 0 || j < 0 {
		return m.unknown
	}
	return m.scores[i][j]
}

// ParseMatrix reads an NCBI-style matrix: a header row of residues and one
// row per residue led by its letter. '#' lines are comments.
func ParseMatrix(r io.Reader, name string) (*Matrix, error) {
	m := &Matrix{Name: name}
	for i := range m.index {
		m.index[i] = -1
	}
	var header []byte

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if header == nil {
			for _, tok := range f {
				if len(tok) != 1 {
					return nil, fmt.Errorf("matrix %s:%d: bad residue %q", name, ln, tok)
				}
				header = append(header, strings.ToUpper(tok)[0])
			}
			continue
		}
		if len(f) != len(header)+1 || len(f[0]) != 1 {
			return nil, fmt.Errorf("matrix %s:%d: want residue and %d scores", name, ln, len(header))
		}
		row := make([]int, len(header))
		for i, tok := range f[1:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("matrix %s:%d: bad score %q", name, ln, tok)
			}
			row[i] = v
		}
		c := strings.ToUpper(f[0])[0]
		m.index[c] = int8(len(m.scores))
		m.index[c|0x20] = int8(len(m.scores))
		m.scores = append(m.scores, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}
	if len(m.scores) != len(header) || len(header) == 0 {
		return nil, fmt.Errorf("matrix %s: %d rows for %d columns", name, len(m.scores), len(header))
	}
	// Columns must follow the row order for Score to be symmetric in lookup.
	for i, c := range header {
		if m.index[c] != int8(i) {
			return nil, fmt.Errorf("matrix %s: row order differs from header at %c", name, c)
		}
	}
	m.unknown = 0
	for _, row := range m.scores {
		for _, v := range row {
			if v < m.unknown {
				m.unknown = v
			}
		}
	}
	if x := m.index['X']; x >= 0 {
		m.unknown = m.scores[x][x]
	}
	return m, nil
}

func mustMatrix(name, text string) *Matrix {
	m, err := ParseMatrix(strings.NewReader(text), name)
	if err != nil {
		panic(err)
	}
	return m
}

func identity() *Matrix {
	const res = "ACDEFGHIKLMNPQRSTVWY"
	m := &Matrix{Name: "IDENTITY", unknown: -1}
	for i := range m.index {
		m.index[i] = -1
	}
	for i := 0; i < len(res); i++ {
		m.index[res[i]] = int8(i)
		m.index[res[i]|0x20] = int8(i)
		row := make([]int, len(res))
		for j := range row {
			row[j] = -1
		}
		row[i] = 1
		m.scores = append(m.scores, row)
	}
	return m
}

var builtin = map[string]*Matrix{
	"BLOSUM62": mustMatrix("BLOSUM62", blosum62),
	"IDENTITY": identity(),
}

// ErrUnknownMatrix is returned by Lookup for an unrecognized matrix id.
var ErrUnknownMatrix = errors.New("unknown substitution matrix")

// Lookup returns a built-in matrix by id (case-insensitive), or loads id as
// a matrix file when it names one.
func Lookup(id string) (*Matrix, error) {
	if id == "" {
		id = "BLOSUM62"
	}
	if m, ok := builtin[strings.ToUpper(id)]; ok {
		return m, nil
	}
	fh, err := os.Open(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownMatrix, id)
	}
	defer func() { _ = fh.Close() }()
	return ParseMatrix(fh, id)
}

// Aligner implements score.PairwiseAligner.
type Aligner struct {
	Matrix *Matrix
}

// Align returns the best ungapped local segment score of aa against ref.
func (a Aligner) Align(aa, ref []byte) (float64, error) {
	if a.Matrix == nil {
		return 0, errors.New("align: no substitution matrix")
	}
	m := a.Matrix
	best := 0
	for d := -(len(aa) - 1); d < len(ref); d++ {
		i := 0
		if d < 0 {
			i = -d
		}
		run := 0
		for ; i < len(aa) && i+d < len(ref); i++ {
			run += m.Score(aa[i], ref[i+d])
			if run < 0 {
				run = 0
			}
			if run > best {
				best = run
			}
		}
	}
	return float64(best), nil
}
