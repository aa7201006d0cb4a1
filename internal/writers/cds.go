package writers

import (
	"io"

	"genesmith/core/gene"
	"genesmith/internal/common"
	"genesmith/internal/output"
)

func init() {
	RegisterCDS(output.FormatText, output.WriteCDSText)
	RegisterCDS(output.FormatJSON, output.WriteCDSJSON)
	RegisterCDS(output.FormatJSONL, writeCDSJSONL)
}

// StartCDSWriter spins up a writer goroutine for CDS records. Text and JSONL
// stream unless sort is set; JSON always buffers into one array.
func StartCDSWriter(out io.Writer, format string, sort bool, bufSize int) (chan<- gene.CDSRecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	switch {
	case format == output.FormatJSONL && !sort:
		return StartCDSJSONLWriter(out, bufSize)
	case format == output.FormatText && !sort:
		in := make(chan gene.CDSRecord, bufSize)
		errCh := make(chan error, 1)
		go func() { errCh <- output.StreamCDSText(out, in) }()
		return in, errCh
	}

	in := make(chan gene.CDSRecord, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var buf []gene.CDSRecord
		for r := range in {
			buf = append(buf, r)
		}
		if sort {
			common.SortRecords(buf)
		}
		errCh <- WriteCDS(format, out, buf)
	}()
	return in, errCh
}
