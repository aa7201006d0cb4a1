package writers

import (
	"io"

	"genesmith/internal/common"
	"genesmith/internal/output"
)

func init() {
	RegisterScore(output.FormatText, output.WriteScoreText)
	RegisterScore(output.FormatJSON, func(w io.Writer, list []output.ScoreRow, _ bool) error {
		return output.WriteScoreJSON(w, list)
	})
	RegisterScore(output.FormatJSONL, func(w io.Writer, list []output.ScoreRow, _ bool) error {
		return writeScoreJSONL(w, list)
	})
	RegisterScore(output.FormatFASTA, func(w io.Writer, list []output.ScoreRow, _ bool) error {
		return output.WriteProteinFASTA(w, list)
	})
}

// StartScoreWriter spins up a writer goroutine for genesmith-score rows.
// header applies to text output only.
func StartScoreWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- output.ScoreRow, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if !sort {
		switch format {
		case output.FormatJSONL:
			return StartScoreJSONLWriter(out, bufSize)
		case output.FormatText:
			in := make(chan output.ScoreRow, bufSize)
			errCh := make(chan error, 1)
			go func() { errCh <- output.StreamScoreText(out, in, header) }()
			return in, errCh
		case output.FormatFASTA:
			in := make(chan output.ScoreRow, bufSize)
			errCh := make(chan error, 1)
			go func() { errCh <- output.StreamProteinFASTA(out, in) }()
			return in, errCh
		}
	}

	in := make(chan output.ScoreRow, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var buf []output.ScoreRow
		for r := range in {
			buf = append(buf, r)
		}
		if sort {
			common.SortScoreRows(buf)
		}
		errCh <- WriteScores(format, out, buf, header)
	}()
	return in, errCh
}
