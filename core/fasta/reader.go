// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// ErrEmpty is returned by First when the input holds no record.
var ErrEmpty = errors.New("fasta: no records")

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Scan parses FASTA from r and calls emit once per record, in input order.
// Sequence lines are trimmed of whitespace; case is preserved. Sequence data
// before the first header is kept under an empty ID. Cancellation via ctx is
// honored between lines.
//
// emit may return a non-nil error (e.g. ctx.Err()) to stop early; it is
// returned unchanged.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		seen bool
		seq  = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !seen && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, seen, seq = parseHeaderID(line[1:]), true, seq[:0]
			continue
		}
		if line[0] == ';' {
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ScanPath is Scan over the file at path (see Open).
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := Scan(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var errStop = errors.New("stop")

// First returns the first record of the file at path, or ErrEmpty.
func First(ctx context.Context, path string) (Record, error) {
	var (
		rec Record
		got bool
	)
	err := ScanPath(ctx, path, func(r Record) error {
		rec, got = r, true
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return Record{}, err
	}
	if !got {
		return Record{}, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return rec, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
