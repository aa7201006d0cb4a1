// internal/common/sort.go
package common

import (
	"sort"

	"genesmith/core/gene"
	"genesmith/internal/output"
)

// LessRecord defines a stable order for CDS records (for --sort): sequence,
// isoform, start, end, strand.
func LessRecord(a, b gene.CDSRecord) bool {
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	if a.Isoform != b.Isoform {
		return a.Isoform < b.Isoform
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}
	return a.Strand < b.Strand
}

func SortRecords(rs []gene.CDSRecord) {
	sort.SliceStable(rs, func(i, j int) bool { return LessRecord(rs[i], rs[j]) })
}

// SortScoreRows orders by id, then frame.
func SortScoreRows(rows []output.ScoreRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ID != rows[j].ID {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].Frame < rows[j].Frame
	})
}
