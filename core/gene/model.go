// Package gene turns decoded label paths into CDS records.
//
// A decoder reports one structural interpretation of a sequence as an ordered
// list of labeled intervals (a Path). The Extractor classifies every label into
// a Role through a configurable Classifier and walks role transitions to find
// gene boundaries, so the same code works for any decoder topology whose
// labels can be mapped onto the roles below.
package gene

import "strings"

// FeatureCDS is the feature column of every emitted record.
const FeatureCDS = "CDS"

// DefaultSource is the source column used when an Extractor has none set.
const DefaultSource = "genesmith"

// Interval is one labeled segment of a decoded path. Coordinates are the
// decoder's own (inclusive, 1-based for GFF-style decoders).
type Interval struct {
	Label      string
	Start      int
	End        int
	Score      float64
	Strand     string
	SequenceID string
}

// Path is one complete decoding of one input sequence.
type Path []Interval

// CDSRecord is one coding segment of a gene.
type CDSRecord struct {
	SequenceID string
	Source     string
	Feature    string
	Start      int
	End        int
	Score      float64
	Strand     string

	// Set by the aggregator: isoform index and percentage of sampled paths
	// supporting it.
	Sampled bool
	Isoform int
	Support float64
}

// GeneID normalizes a sequence identifier: a leading '>' and anything after
// the first whitespace are removed.
func GeneID(id string) string {
	id = strings.TrimPrefix(strings.TrimSpace(id), ">")
	if i := strings.IndexAny(id, " \t"); i >= 0 {
		id = id[:i]
	}
	return id
}
