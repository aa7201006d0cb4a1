// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"genesmith/core/gene"
	"genesmith/internal/jsonlutil"
	"genesmith/internal/output"
)

// StartCDSJSONLWriter streams each CDS record as one JSON line (v1).
func StartCDSJSONLWriter(out io.Writer, bufSize int) (chan<- gene.CDSRecord, <-chan error) {
	return jsonlutil.Start[gene.CDSRecord](out, bufSize,
		func(enc *json.Encoder, r gene.CDSRecord) error {
			return enc.Encode(output.ToAPIRecord(r))
		},
		IsBrokenPipe,
	)
}

// StartScoreJSONLWriter streams each score row as one JSON line (v1).
func StartScoreJSONLWriter(out io.Writer, bufSize int) (chan<- output.ScoreRow, <-chan error) {
	return jsonlutil.Start[output.ScoreRow](out, bufSize,
		func(enc *json.Encoder, r output.ScoreRow) error {
			return enc.Encode(output.ToAPIScore(r))
		},
		IsBrokenPipe,
	)
}

func writeCDSJSONL(w io.Writer, list []gene.CDSRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range list {
		if err := enc.Encode(output.ToAPIRecord(r)); err != nil {
			return err
		}
	}
	return nil
}

func writeScoreJSONL(w io.Writer, list []output.ScoreRow) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range list {
		if err := enc.Encode(output.ToAPIScore(r)); err != nil {
			return err
		}
	}
	return nil
}
