// internal/output/json.go
package output

import (
	"io"
	"math"

	"genesmith/core/gene"
	"genesmith/internal/jsonutil"
	"genesmith/pkg/api"
)

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// ToAPIRecord converts a CDS record to the stable wire schema (v1).
func ToAPIRecord(r gene.CDSRecord) api.CDSRecordV1 {
	v := api.CDSRecordV1{
		SequenceID: r.SequenceID,
		Source:     r.Source,
		Feature:    r.Feature,
		Start:      r.Start,
		End:        r.End,
		Score:      finite(r.Score),
		Strand:     r.Strand,
	}
	if r.Sampled {
		iso, sup := r.Isoform, r.Support
		v.Isoform, v.Support = &iso, &sup
	}
	return v
}

func toAPIRecords(list []gene.CDSRecord) []api.CDSRecordV1 {
	out := make([]api.CDSRecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return out
}

// WriteCDSJSON writes a single JSON array of v1 records (pretty-indented).
func WriteCDSJSON(w io.Writer, list []gene.CDSRecord) error {
	return jsonutil.EncodePretty(w, toAPIRecords(list))
}
