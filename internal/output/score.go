// internal/output/score.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"genesmith/core/score"
	"genesmith/internal/jsonutil"
	"genesmith/pkg/api"
)

// ScoreRow is one candidate evaluated by genesmith-score.
type ScoreRow struct {
	ID      string
	Frame   int
	Protein string
	Result  score.Result
}

// FormatScoreLine renders id, frame, protein, verdict and score, tab-separated.
func FormatScoreLine(r ScoreRow) string {
	return r.ID + "\t" + strconv.Itoa(r.Frame) + "\t" + r.Protein + "\t" +
		r.Result.Verdict.String() + "\t" + strconv.FormatFloat(r.Result.Score, 'g', -1, 64)
}

// WriteScoreText writes one line per row, preceded by ScoreTSVHeader when
// header is set.
func WriteScoreText(w io.Writer, list []ScoreRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ScoreTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatScoreLine(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamScoreText is WriteScoreText for a channel.
func StreamScoreText(w io.Writer, in <-chan ScoreRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ScoreTSVHeader); err != nil {
			for range in {
			}
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatScoreLine(r)); err != nil {
			for range in {
			}
			return err
		}
	}
	return nil
}

// ToAPIScore converts a row to the stable wire schema (v1).
func ToAPIScore(r ScoreRow) api.ScoreV1 {
	v := api.ScoreV1{
		ID:      r.ID,
		Frame:   r.Frame,
		Protein: r.Protein,
		Verdict: r.Result.Verdict.String(),
	}
	if r.Result.Accepted() {
		v.Score = finite(r.Result.Score)
	}
	if r.Result.Err != nil {
		v.Error = r.Result.Err.Error()
	}
	return v
}

// WriteScoreJSON writes a single JSON array of v1 scores (pretty-indented).
func WriteScoreJSON(w io.Writer, list []ScoreRow) error {
	out := make([]api.ScoreV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIScore(r))
	}
	return jsonutil.EncodePretty(w, out)
}
