// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"genesmith/core/gene"
	"genesmith/internal/output"
)

// Batch writer registries (format → handler), used when the whole run is
// buffered (JSON arrays, --sort). Populated in init() by the format files.
var (
	CDSWriters   = map[string]func(w io.Writer, list []gene.CDSRecord) error{}
	ScoreWriters = map[string]func(w io.Writer, list []output.ScoreRow, header bool) error{}
)

// Register helpers (idempotent last-wins)
func RegisterCDS(format string, fn func(io.Writer, []gene.CDSRecord) error) {
	CDSWriters[format] = fn
}

func RegisterScore(format string, fn func(io.Writer, []output.ScoreRow, bool) error) {
	ScoreWriters[format] = fn
}

// WriteCDS dispatches to the registered CDS writer for format.
func WriteCDS(format string, w io.Writer, list []gene.CDSRecord) error {
	fn, ok := CDSWriters[format]
	if !ok {
		return fmt.Errorf("unknown CDS format %q (no writer registered)", format)
	}
	return fn(w, list)
}

// WriteScores dispatches to the registered score writer for format.
func WriteScores(format string, w io.Writer, list []output.ScoreRow, header bool) error {
	fn, ok := ScoreWriters[format]
	if !ok {
		return fmt.Errorf("unknown score format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}
