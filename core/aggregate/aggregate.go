// Package aggregate counts independently sampled decoded paths and reports
// each distinct gene structure with its sampling support.
package aggregate

import (
	"cmp"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"genesmith/core/gene"
)

// ErrNoSamples is returned alongside an empty result when no paths were
// sampled.
var ErrNoSamples = errors.New("aggregate: no sampled paths")

var keyEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, ":", `\:`, ";", `\;`)

// Key is the canonical form of a path: "seqid|label:start-end|strand"
// segments joined by ';', with separators inside names backslash-escaped.
// Interval scores are excluded so identical structures collapse.
func Key(p gene.Path) string {
	var b strings.Builder
	b.Grow(len(p) * 24)
	buf := make([]byte, 0, 24)
	for i, iv := range p {
		if i > 0 {
			b.WriteByte(';')
		}
		keyEscaper.WriteString(&b, iv.SequenceID)
		b.WriteByte('|')
		keyEscaper.WriteString(&b, iv.Label)
		buf = append(buf[:0], ':')
		buf = strconv.AppendInt(buf, int64(iv.Start), 10)
		buf = append(buf, '-')
		buf = strconv.AppendInt(buf, int64(iv.End), 10)
		buf = append(buf, '|')
		b.Write(buf)
		keyEscaper.WriteString(&b, iv.Strand)
	}
	return b.String()
}

// Table is a path frequency table for one input sequence.
type Table struct {
	counts map[string]int
	paths  map[string]gene.Path
	total  int
}

func NewTable() *Table {
	return &Table{counts: map[string]int{}, paths: map[string]gene.Path{}}
}

// Add counts one sampled path. Of the paths sharing a key, the one with the
// smallest interval scores is kept, whatever the order of arrival.
func (t *Table) Add(p gene.Path) {
	k := Key(p)
	if q, ok := t.paths[k]; !ok || scoresLess(p, q) {
		t.paths[k] = p
	}
	t.counts[k]++
	t.total++
}

// scoresLess orders paths of equal key by their interval scores.
func scoresLess(a, b gene.Path) bool {
	for i := range a {
		if c := cmp.Compare(a[i].Score, b[i].Score); c != 0 {
			return c < 0
		}
	}
	return false
}

// Total is the number of paths added.
func (t *Table) Total() int { return t.total }

// Isoform is one distinct sampled path and the CDS records it implies.
type Isoform struct {
	Index   int
	Key     string
	Count   int
	Support float64 // percent of samples, rounded to 3 decimals
	Path    gene.Path
	Records []gene.CDSRecord
}

// Isoforms extracts every distinct path, indexed in ascending key order.
// Each record is tagged with its isoform index and support.
func (t *Table) Isoforms(e *gene.Extractor) ([]Isoform, error) {
	if t.total == 0 {
		return []Isoform{}, ErrNoSamples
	}
	keys := make([]string, 0, len(t.counts))
	for k := range t.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Isoform, 0, len(keys))
	for i, k := range keys {
		n := t.counts[k]
		iso := Isoform{
			Index:   i,
			Key:     k,
			Count:   n,
			Support: Support(n, t.total),
			Path:    t.paths[k],
		}
		for _, r := range e.Extract(iso.Path) {
			r.Sampled = true
			r.Isoform = i
			r.Support = iso.Support
			iso.Records = append(iso.Records, r)
		}
		out = append(out, iso)
	}
	return out, nil
}

// Aggregate builds a table from paths and returns its isoforms.
func Aggregate(e *gene.Extractor, paths []gene.Path) ([]Isoform, error) {
	t := NewTable()
	for _, p := range paths {
		t.Add(p)
	}
	return t.Isoforms(e)
}

// Support is 100*count/total rounded to 3 decimal places; 0 when total is 0.
func Support(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(100*float64(count)/float64(total)*1000) / 1000
}

// Records flattens isoforms into their records, in isoform order.
func Records(isos []Isoform) []gene.CDSRecord {
	var out []gene.CDSRecord
	for _, iso := range isos {
		out = append(out, iso.Records...)
	}
	return out
}

// MinSupport drops isoforms with support below pct. Indices are kept.
func MinSupport(isos []Isoform, pct float64) []Isoform {
	if pct <= 0 {
		return isos
	}
	out := isos[:0:0]
	for _, iso := range isos {
		if iso.Support >= pct {
			out = append(out, iso)
		}
	}
	return out
}

// ByFrequency returns a copy of isos ordered by descending count, ties
// broken by index.
func ByFrequency(isos []Isoform) []Isoform {
	out := append([]Isoform(nil), isos...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Index < out[j].Index
	})
	return out
}
