// Package codon holds genetic codes: total maps from nucleotide triplets over
// {A,C,G,T,N} to one-letter amino-acid symbols.
package codon

// Symbols returned for stop codons and for triplets the code cannot resolve.
const (
	Stop    byte = '*'
	Unknown byte = 'X'
)

// NumCodons is the number of triplets over the five-letter alphabet ACGTN.
const NumCodons = 125

/* --------------------------- base index table --------------------------- */

// A=0 C=1 G=2 T/U=3 N=4, -1 otherwise. Must be ready before standard is built.
var baseIndex = buildBaseIndex()

func buildBaseIndex() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	set := func(c byte, v int8) {
		t[c] = v
		t[c|0x20] = v // lower case
	}
	set('A', 0)
	set('C', 1)
	set('G', 2)
	set('T', 3)
	set('U', 3)
	set('N', 4)
	return t
}

// Code is an immutable genetic code covering all 125 triplets.
type Code struct {
	name  string
	aa    [NumCodons]byte
	start [NumCodons]bool
}

// Name is the table name (file path for loaded codes).
func (c *Code) Name() string { return c.name }

// index returns the table slot of a triplet and whether it holds only
// unambiguous bases. ok=false with idx=-1 means the triplet is malformed.
func index(triplet []byte) (idx int, unambiguous bool) {
	if len(triplet) != 3 {
		return -1, false
	}
	a, b, c := baseIndex[triplet[0]], baseIndex[triplet[1]], baseIndex[triplet[2]]
	if a < 0 || b < 0 || c < 0 {
		return -1, false
	}
	return int(a)*25 + int(b)*5 + int(c), a != 4 && b != 4 && c != 4
}

// TranslateCodon maps one triplet to its amino acid, Stop, or Unknown.
// Triplets containing N, wrong-length input, and bytes outside the
// nucleotide alphabet all yield Unknown.
func (c *Code) TranslateCodon(triplet []byte) byte {
	idx, ok := index(triplet)
	if !ok {
		return Unknown
	}
	return c.aa[idx]
}

// IsStart reports whether triplet is one of the code's start codons.
func (c *Code) IsStart(triplet []byte) bool {
	idx, ok := index(triplet)
	return ok && c.start[idx]
}

// IsStop reports whether aa is the stop symbol.
func IsStop(aa byte) bool { return aa == Stop }

// Codons returns every unambiguous codon that translates to aa, in
// ACGT order.
func (c *Code) Codons(aa byte) []string {
	var out []string
	for i := 0; i < NumCodons; i++ {
		t := tripletAt(i)
		if _, ok := index([]byte(t)); ok && c.aa[i] == aa {
			out = append(out, t)
		}
	}
	return out
}

const alphabet = "ACGTN"

func tripletAt(i int) string {
	return string([]byte{alphabet[i/25], alphabet[(i/5)%5], alphabet[i%5]})
}

func newUnknown(name string) *Code {
	c := &Code{name: name}
	for i := range c.aa {
		c.aa[i] = Unknown
	}
	return c
}
