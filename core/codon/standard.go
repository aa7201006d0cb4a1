package codon

import (
	"fmt"
	"strconv"

	polycodon "github.com/bebop/poly/synthesis/codon"
)

// NCBI translation table numbers known to poly.
var ncbiTables = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 9: true, 10: true,
	11: true, 12: true, 13: true, 14: true, 15: true, 16: true, 21: true,
	22: true, 23: true, 24: true, 25: true, 26: true, 27: true, 28: true,
	29: true, 30: true, 31: true, 32: true, 33: true,
}

var standard = mustNCBI(1)

func mustNCBI(n int) *Code {
	c, err := NCBI(n)
	if err != nil {
		panic(err)
	}
	c.name = "standard"
	return c
}

// NCBI builds the genetic code of NCBI translation table n. Triplets
// containing N translate to Unknown; start codons are the table's own.
func NCBI(n int) (*Code, error) {
	if !ncbiTables[n] {
		return nil, fmt.Errorf("no NCBI translation table %d", n)
	}
	table, err := polycodon.NewTranslationTable(n)
	if err != nil {
		return nil, fmt.Errorf("NCBI table %d: %w", n, err)
	}
	if table == nil {
		return nil, fmt.Errorf("no NCBI translation table %d", n)
	}

	c := newUnknown("ncbi:" + strconv.Itoa(n))
	for i := 0; i < NumCodons; i++ {
		t := tripletAt(i)
		if _, ok := index([]byte(t)); !ok {
			continue
		}
		// A leading ATG keeps the triplet out of the start position,
		// where poly applies start-codon translation.
		aa, err := table.Translate("ATG" + t)
		if err != nil || len(aa) != 2 {
			return nil, fmt.Errorf("NCBI table %d: translate %s: %v", n, t, err)
		}
		c.aa[i] = aa[1]
	}
	for _, t := range table.StopCodons {
		if idx, ok := index([]byte(t)); ok {
			c.aa[idx] = Stop
		}
	}
	for _, t := range table.StartCodons {
		if idx, ok := index([]byte(t)); ok {
			c.start[idx] = true
		}
	}
	return c, nil
}

// Default returns the standard genetic code (NCBI table 1). The value is
// shared and must not be modified.
func Default() *Code { return standard }
