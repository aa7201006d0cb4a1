package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"genesmith/core/gene"
	"genesmith/core/score"
	"genesmith/internal/output"
	"genesmith/pkg/api"
)

func cds(id string, start, end int) gene.CDSRecord {
	return gene.CDSRecord{SequenceID: id, Source: "genesmith", Feature: gene.FeatureCDS, Start: start, End: end, Strand: "+"}
}

func TestUnknownCDSFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartCDSWriter(&b, "nope-format", false, 1)
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown CDS format") {
		t.Fatalf("want 'unknown CDS format' error, got: %v", err)
	}
}

func TestUnknownScoreFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartScoreWriter(&b, "wat", false, false, 1)
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown score format") {
		t.Fatalf("want 'unknown score format' error, got: %v", err)
	}
}

func TestCDSTextSorted(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartCDSWriter(&buf, output.FormatText, true, 4)
	in <- cds("b", 1, 9)
	in <- cds("a", 5, 9)
	in <- cds("a", 1, 3)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "a\tgenesmith\tCDS\t1\t3") || !strings.HasPrefix(lines[2], "b\t") {
		t.Fatalf("unsorted output:\n%s", buf.String())
	}
}

func TestCDSTextStreamsInArrivalOrder(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartCDSWriter(&buf, output.FormatText, false, 4)
	in <- cds("b", 1, 9)
	in <- cds("a", 1, 3)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "b\t") {
		t.Fatalf("stream reordered output:\n%s", buf.String())
	}
}

func TestCDSJSON(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartCDSWriter(&buf, output.FormatJSON, false, 4)
	in <- cds(">x", 1, 3)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	var got []api.CDSRecordV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 || got[0].SequenceID != ">x" {
		t.Fatalf("json: %v %+v", err, got)
	}
	if !strings.Contains(buf.String(), `">x"`) {
		t.Fatalf("html escaping leaked into output: %s", buf.String())
	}
}

func TestCDSJSONL_StreamsValidV1(t *testing.T) {
	for _, sorted := range []bool{false, true} {
		var buf bytes.Buffer
		in, done := StartCDSWriter(&buf, output.FormatJSONL, sorted, 2)
		in <- cds("s", 4, 9)
		in <- cds("s", 1, 3)
		close(in)
		if err := <-done; err != nil {
			t.Fatalf("writer err: %v", err)
		}
		sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
		var starts []int
		for sc.Scan() {
			var v api.CDSRecordV1
			if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
				t.Fatalf("bad json line: %v\n%s", err, sc.Text())
			}
			starts = append(starts, v.Start)
		}
		if len(starts) != 2 {
			t.Fatalf("want 2 lines, got %d", len(starts))
		}
		if sorted && starts[0] != 1 {
			t.Fatalf("sorted jsonl out of order: %v", starts)
		}
	}
}

func TestScoreWriterFormats(t *testing.T) {
	row := output.ScoreRow{ID: "c", Protein: "MK*", Result: score.Result{Score: 4}}
	for format, want := range map[string]string{
		output.FormatText:  output.ScoreTSVHeader + "\nc\t0\tMK*\taccepted\t4\n",
		output.FormatFASTA: ">c frame=0 score=4\nMK\n",
		output.FormatJSONL: `{"id":"c","frame":0,"protein":"MK*","verdict":"accepted","score":4}` + "\n",
	} {
		for _, sorted := range []bool{false, true} {
			var buf bytes.Buffer
			in, done := StartScoreWriter(&buf, format, sorted, true, 1)
			in <- row
			close(in)
			if err := <-done; err != nil {
				t.Fatalf("%s: %v", format, err)
			}
			if buf.String() != want {
				t.Fatalf("%s (sort=%v): got %q want %q", format, sorted, buf.String(), want)
			}
		}
	}
}

type epipe struct{}

func (epipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(errors.New("x")) || IsBrokenPipe(nil) {
		t.Fatalf("IsBrokenPipe misclassifies")
	}
	in, done := StartCDSWriter(epipe{}, output.FormatJSONL, false, 1)
	in <- cds("s", 1, 3)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("jsonl writer must swallow EPIPE, got %v", err)
	}
}
