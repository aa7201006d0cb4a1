package appcore

import (
	"io"

	"genesmith/core/gene"
	"genesmith/internal/output"
	"genesmith/internal/writers"
)

// ---------------- CDS writer ----------------

type CDSWriterFactory struct {
	Format string
	Sort   bool
}

func NewCDSWriterFactory(format string, sort bool) CDSWriterFactory {
	return CDSWriterFactory{Format: format, Sort: sort}
}

func (w CDSWriterFactory) Start(out io.Writer, bufSize int) (chan<- gene.CDSRecord, <-chan error) {
	return writers.StartCDSWriter(out, w.Format, w.Sort, bufSize)
}

// ---------------- Score writer ----------------

type ScoreWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewScoreWriterFactory(format string, sort, header bool) ScoreWriterFactory {
	return ScoreWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w ScoreWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.ScoreRow, <-chan error) {
	return writers.StartScoreWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
