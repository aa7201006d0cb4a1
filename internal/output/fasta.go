package output

import (
	"fmt"
	"io"
)

// WriteProteinFASTA writes the protein of every accepted row, without its
// terminal stop, as ">id frame=N score=S".
func WriteProteinFASTA(w io.Writer, list []ScoreRow) error {
	for _, r := range list {
		if err := writeProtein(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamProteinFASTA is WriteProteinFASTA for a channel.
func StreamProteinFASTA(w io.Writer, in <-chan ScoreRow) error {
	for r := range in {
		if err := writeProtein(w, r); err != nil {
			for range in {
			}
			return err
		}
	}
	return nil
}

func writeProtein(w io.Writer, r ScoreRow) error {
	if !r.Result.Accepted() {
		return nil
	}
	aa := r.Protein
	if n := len(aa); n > 0 && aa[n-1] == '*' {
		aa = aa[:n-1]
	}
	_, err := fmt.Fprintf(w, ">%s frame=%d score=%g\n%s\n", r.ID, r.Frame, r.Result.Score, aa)
	return err
}
