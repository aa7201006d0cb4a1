// Package translate converts nucleotide sequences to protein.
package translate

import "genesmith/core/codon"

// Translate maps consecutive triplets of nt, starting at offset 0, through
// code. A trailing partial codon is dropped.
func Translate(code *codon.Code, nt []byte) []byte {
	return AppendTranslate(make([]byte, 0, len(nt)/3), code, nt)
}

// AppendTranslate appends the translation of nt to dst and returns the
// extended slice. It does not allocate when dst has room for len(nt)/3 bytes.
func AppendTranslate(dst []byte, code *codon.Code, nt []byte) []byte {
	n := len(nt) - len(nt)%3
	for i := 0; i < n; i += 3 {
		dst = append(dst, code.TranslateCodon(nt[i:i+3]))
	}
	return dst
}

// Frame translates nt starting at offset frame (0, 1 or 2).
func Frame(code *codon.Code, nt []byte, frame int) []byte {
	if frame < 0 || frame > 2 || frame >= len(nt) {
		return []byte{}
	}
	return Translate(code, nt[frame:])
}
