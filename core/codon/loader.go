package codon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TableLoadError reports a genetic-code file that could not be opened or read.
type TableLoadError struct {
	Path string
	Err  error
}

func (e *TableLoadError) Error() string {
	return fmt.Sprintf("genetic code %s: %v", e.Path, e.Err)
}

func (e *TableLoadError) Unwrap() error { return e.Err }

// LoadFile reads a tab-delimited genetic code.
//
// A one-character field names the current amino acid; every following codon
// field binds to it, across line breaks, until the next one-character field.
// Fields that are neither are ignored, as are blank lines and '#' comments.
// Codons the file never mentions translate to Unknown. Codons bound to M are
// the start codons.
func LoadFile(path string) (*Code, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &TableLoadError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	c, err := Parse(fh, path)
	if err != nil {
		return nil, &TableLoadError{Path: path, Err: err}
	}
	return c, nil
}

// Parse reads a genetic code from r. See LoadFile for the format.
func Parse(r io.Reader, name string) (*Code, error) {
	c := newUnknown(name)
	var current byte

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		for _, tok := range strings.Fields(line) {
			switch {
			case len(tok) == 1:
				current = strings.ToUpper(tok)[0]
			case len(tok) == 3 && current != 0:
				idx, ok := index([]byte(tok))
				if ok {
					c.aa[idx] = current
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for i, aa := range c.aa {
		c.start[i] = aa == 'M'
	}
	return c, nil
}

// Lookup resolves name to a genetic code: an NCBI translation table number
// such as "11", or else a table file read with LoadFile.
func Lookup(name string) (*Code, error) {
	if n, err := strconv.Atoi(name); err == nil {
		c, err := NCBI(n)
		if err != nil {
			return nil, &TableLoadError{Path: name, Err: err}
		}
		return c, nil
	}
	return LoadFile(name)
}

// LoadOrDefault resolves path with Lookup, falling back to the standard code
// when path is empty or cannot be resolved. warn receives a diagnostic on fallback and may be nil.
func LoadOrDefault(path string, warn func(format string, a ...any)) *Code {
	if path == "" {
		return Default()
	}
	c, err := Lookup(path)
	if err != nil {
		if warn != nil {
			warn("%v; using the standard genetic code", err)
		}
		return Default()
	}
	return c
}
