package gene

// Extractor converts decoded paths into CDS records.
//
// Transitions between consecutive intervals drive a small state machine:
//
//	intergenic -> start              open gene, cds_start = start
//	intergenic -> single_exon_start  open single-exon gene
//	acceptor   -> single_exon_start  open single-exon gene
//	coding     -> donor              close segment [cds_start, end-1]
//	acceptor   -> coding             reopen segment, cds_start = start
//	stop_first -> stop_second        close gene, last segment [cds_start, end]
//	single_exon_start -> intergenic  close gene, segment [cds_start, end-1]
//
// Segments of a gene are held until the gene closes, and are only emitted
// when the closing interval belongs to the same sequence as the opening one.
// A gene still open when the path ends produces nothing.
type Extractor struct {
	Classifier *Classifier
	Source     string
}

// NewExtractor returns an Extractor using c, or the default label table when
// c is nil.
func NewExtractor(c *Classifier, source string) *Extractor {
	if c == nil {
		c = DefaultClassifier()
	}
	if source == "" {
		source = DefaultSource
	}
	return &Extractor{Classifier: c, Source: source}
}

type geneState struct {
	open     bool
	cdsStart int
	geneID   string
	pending  []CDSRecord
}

func (g *geneState) begin(iv Interval) {
	g.open = true
	g.cdsStart = iv.Start
	g.geneID = GeneID(iv.SequenceID)
	g.pending = g.pending[:0]
}

func (g *geneState) reset() {
	g.open = false
	g.pending = g.pending[:0]
}

// Extract returns the CDS records of p in path order. It never modifies p.
func (e *Extractor) Extract(p Path) []CDSRecord {
	var (
		out  []CDSRecord
		g    geneState
		prev = Other
	)
	segment := func(start, end int, iv Interval) {
		if start > end {
			return
		}
		g.pending = append(g.pending, CDSRecord{
			SequenceID: g.geneID,
			Source:     e.Source,
			Feature:    FeatureCDS,
			Start:      start,
			End:        end,
			Score:      iv.Score,
			Strand:     iv.Strand,
		})
	}
	closeGene := func(iv Interval) {
		if g.open && g.geneID == GeneID(iv.SequenceID) {
			out = append(out, g.pending...)
		}
		g.reset()
	}

	for _, iv := range p {
		cur := e.Classifier.Classify(iv.Label)
		switch {
		case prev == Intergenic && (cur == Start || cur == SingleExonStart),
			prev == Acceptor && cur == SingleExonStart:
			g.begin(iv)
		case prev == Coding && cur == Donor:
			if g.open {
				segment(g.cdsStart, iv.End-1, iv)
			}
		case prev == Acceptor && cur == Coding:
			if g.open {
				g.cdsStart = iv.Start
			}
		case prev == StopFirst && cur == StopSecond:
			if g.open {
				segment(g.cdsStart, iv.End, iv)
			}
			closeGene(iv)
		case prev == SingleExonStart && cur == Intergenic:
			if g.open {
				segment(g.cdsStart, iv.End-1, iv)
			}
			closeGene(iv)
		}
		prev = cur
	}
	return out
}
