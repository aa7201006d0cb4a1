package output

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"genesmith/core/gene"
	"genesmith/core/score"
)

func rec(start, end int) gene.CDSRecord {
	return gene.CDSRecord{
		SequenceID: "chr1", Source: "genesmith", Feature: gene.FeatureCDS,
		Start: start, End: end, Score: -12.5, Strand: "+",
	}
}

func TestCDSLineDeterministic(t *testing.T) {
	got := FormatCDSLine(rec(101, 201))
	const want = "chr1\tgenesmith\tCDS\t101\t201\t-12.5\t+\tchr1"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestCDSLineSampled(t *testing.T) {
	r := rec(101, 201)
	r.Sampled, r.Isoform, r.Support = true, 1, 62.3
	got := FormatCDSLine(r)
	const want = "chr1\tgenesmith\tCDS\t101\t201\t-12.5\t+\tchr1.1:percentage_reps=62.300%"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	r.Isoform, r.Support = 0, 100.0/3
	if got := FormatCDSLine(r); !strings.HasSuffix(got, "\tchr1.0:percentage_reps=33.333%") {
		t.Fatalf("rounding: %q", got)
	}
}

func TestWriteAndStreamAgree(t *testing.T) {
	list := []gene.CDSRecord{rec(1, 3), rec(10, 30)}
	var a, b bytes.Buffer
	if err := WriteCDSText(&a, list); err != nil {
		t.Fatal(err)
	}
	in := make(chan gene.CDSRecord, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	if err := StreamCDSText(&b, in); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() || bytes.Count(a.Bytes(), []byte("\n")) != 2 {
		t.Fatalf("write/stream mismatch:\n%q\n%q", a.String(), b.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStreamDrainsOnError(t *testing.T) {
	in := make(chan gene.CDSRecord, 3)
	for i := 0; i < 3; i++ {
		in <- rec(i+1, i+2)
	}
	close(in)
	if err := StreamCDSText(failWriter{}, in); err == nil {
		t.Fatalf("expected write error")
	}
	if len(in) != 0 {
		t.Fatalf("channel not drained: %d left", len(in))
	}
}

func TestScoreLine(t *testing.T) {
	ok := ScoreRow{ID: "c1", Frame: 0, Protein: "MK*", Result: score.Result{Score: 3.5}}
	if got := FormatScoreLine(ok); got != "c1\t0\tMK*\taccepted\t3.5" {
		t.Fatalf("accepted line %q", got)
	}
	bad := ScoreRow{ID: "c2", Frame: 2, Protein: "M*K", Result: score.Result{Score: math.Inf(-1), Verdict: score.InvalidTranslation}}
	if got := FormatScoreLine(bad); got != "c2\t2\tM*K\tinvalid_translation\t-Inf" {
		t.Fatalf("rejected line %q", got)
	}

	var buf bytes.Buffer
	if err := WriteScoreText(&buf, []ScoreRow{ok}, true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ScoreTSVHeader+"\n"+FormatScoreLine(ok)+"\n" {
		t.Fatalf("score text %q", buf.String())
	}
}

func TestProteinFASTASkipsRejected(t *testing.T) {
	var buf bytes.Buffer
	rows := []ScoreRow{
		{ID: "c1", Frame: 1, Protein: "MK*", Result: score.Result{Score: 2}},
		{ID: "c2", Protein: "M*K", Result: score.Result{Score: math.Inf(-1), Verdict: score.InvalidTranslation}},
	}
	if err := WriteProteinFASTA(&buf, rows); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ">c1 frame=1 score=2\nMK\n" {
		t.Fatalf("fasta %q", buf.String())
	}
}
