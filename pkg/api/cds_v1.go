// pkg/api/cds_v1.go
package api

// CDSRecordV1 is the stable JSON/JSONL schema for one CDS segment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CDSRecordV1 struct {
	SequenceID string   `json:"sequence_id"`
	Source     string   `json:"source"`
	Feature    string   `json:"feature"` // always "CDS"
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Score      *float64 `json:"score"` // null when the decoder reported a non-finite score
	Strand     string   `json:"strand"`

	// Sampled runs only.
	Isoform *int     `json:"isoform,omitempty"`
	Support *float64 `json:"percentage_reps,omitempty"` // percent of sampled paths
}

// ScoreV1 is the stable schema for one candidate scored by genesmith-score.
type ScoreV1 struct {
	ID      string   `json:"id"`
	Frame   int      `json:"frame"`
	Protein string   `json:"protein"`
	Verdict string   `json:"verdict"` // "accepted" | "invalid_translation" | "scoring_failure"
	Score   *float64 `json:"score"`   // null when rejected
	Error   string   `json:"error,omitempty"`
}
