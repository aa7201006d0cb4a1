package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestScanRecords(t *testing.T) {
	var got []Record
	err := Scan(context.Background(), strings.NewReader(plain), func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].ID != "seq1" || string(got[0].Seq) != "ACGTacgt" {
		t.Fatalf("record 0 = %q %q", got[0].ID, got[0].Seq)
	}
	if got[1].ID != "seq2" || string(got[1].Seq) != "NNnn" {
		t.Fatalf("record 1 = %q %q", got[1].ID, got[1].Seq)
	}
}

func TestScanHeaderlessAndEmptyRecord(t *testing.T) {
	var got []Record
	_ = Scan(context.Background(), strings.NewReader("MKV\n>empty\n>x\nA\n"), func(r Record) error {
		got = append(got, r)
		return nil
	})
	if len(got) != 3 || got[0].ID != "" || string(got[0].Seq) != "MKV" || got[1].ID != "empty" || len(got[1].Seq) != 0 {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestScanPathGzip(t *testing.T) {
	var recs []Record
	err := ScanPath(context.Background(), writeGz(t, plain), func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestFirst(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ref.fa")
	if err := os.WriteFile(fn, []byte(plain), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := First(context.Background(), fn)
	if err != nil || r.ID != "seq1" {
		t.Fatalf("First = %+v, %v", r, err)
	}

	empty := filepath.Join(t.TempDir(), "empty.fa")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := First(context.Background(), empty); !errors.Is(err, ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
	if _, err := First(context.Background(), filepath.Join(t.TempDir(), "none.fa")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist, got %v", err)
	}
}

func TestScanPathStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	count := 0
	err := ScanPath(context.Background(), "-", func(Record) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("scan stdin: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", count)
	}
}

func TestScanPathCancelled(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "x.fa")
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 0
	err := ScanPath(ctx, fn, func(Record) error {
		n++
		return nil
	})
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
