// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"genesmith/core/gene"
	"genesmith/core/score"
	"genesmith/pkg/api"
)

func TestWriteCDSJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	sampled := rec(5, 9)
	sampled.Sampled, sampled.Isoform, sampled.Support = true, 2, 37.7
	if err := WriteCDSJSON(buf, []gene.CDSRecord{rec(1, 3), sampled}); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.CDSRecordV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json decode failed: %v %v", err, got)
	}
	if got[0].Isoform != nil || got[0].Support != nil {
		t.Fatalf("deterministic record carries sampling fields: %+v", got[0])
	}
	if got[1].Isoform == nil || *got[1].Isoform != 2 || *got[1].Support != 37.7 {
		t.Fatalf("sampled record: %+v", got[1])
	}
	if got[0].Score == nil || *got[0].Score != -12.5 {
		t.Fatalf("score: %+v", got[0].Score)
	}
}

func TestJSONNonFiniteScoreIsNull(t *testing.T) {
	r := rec(1, 3)
	r.Score = math.Inf(-1)
	buf := &bytes.Buffer{}
	if err := WriteCDSJSON(buf, []gene.CDSRecord{r}); err != nil {
		t.Fatalf("-Inf must not break encoding: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"score": null`)) {
		t.Fatalf("want null score, got %s", buf.String())
	}
}

func TestToAPIScore(t *testing.T) {
	v := ToAPIScore(ScoreRow{ID: "x", Protein: "M", Result: score.Result{
		Score: math.Inf(-1), Verdict: score.ScoringFailure,
		Err: &score.FailureError{Scorer: "profile", Err: errors.New("boom")},
	}})
	if v.Score != nil || v.Verdict != "scoring_failure" || v.Error == "" {
		t.Fatalf("rejected score: %+v", v)
	}
	buf := &bytes.Buffer{}
	if err := WriteScoreJSON(buf, []ScoreRow{{ID: "y", Result: score.Result{Score: 1.25}}}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"score": 1.25`)) {
		t.Fatalf("score json %s", buf.String())
	}
}
