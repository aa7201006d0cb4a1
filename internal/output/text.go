// internal/output/text.go
package output

import (
	"io"
	"strconv"

	"genesmith/core/gene"
)

// AppendCDSLine appends one tab-separated CDS line (with newline) to dst:
//
//	seqid  source  CDS  start  end  score  strand  seqid[.iso:percentage_reps=NN.NNN%]
//
// The isoform suffix is written for sampled records only.
func AppendCDSLine(dst []byte, r gene.CDSRecord) []byte {
	dst = append(dst, r.SequenceID...)
	dst = append(dst, '\t')
	dst = append(dst, r.Source...)
	dst = append(dst, '\t')
	dst = append(dst, r.Feature...)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(r.Start), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(r.End), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendFloat(dst, r.Score, 'g', -1, 64)
	dst = append(dst, '\t')
	dst = append(dst, r.Strand...)
	dst = append(dst, '\t')
	dst = append(dst, r.SequenceID...)
	if r.Sampled {
		dst = append(dst, '.')
		dst = strconv.AppendInt(dst, int64(r.Isoform), 10)
		dst = append(dst, FeatureSuffix...)
		dst = strconv.AppendFloat(dst, r.Support, 'f', 3, 64)
		dst = append(dst, '%')
	}
	return append(dst, '\n')
}

// FormatCDSLine is AppendCDSLine without the trailing newline.
func FormatCDSLine(r gene.CDSRecord) string {
	b := AppendCDSLine(nil, r)
	return string(b[:len(b)-1])
}

// WriteCDSText writes one line per record.
func WriteCDSText(w io.Writer, list []gene.CDSRecord) error {
	buf := make([]byte, 0, 256)
	for _, r := range list {
		buf = AppendCDSLine(buf[:0], r)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// StreamCDSText writes records as they arrive. On a write error the channel
// is drained so the producer never blocks.
func StreamCDSText(w io.Writer, in <-chan gene.CDSRecord) error {
	buf := make([]byte, 0, 256)
	for r := range in {
		buf = AppendCDSLine(buf[:0], r)
		if _, err := w.Write(buf); err != nil {
			for range in {
			}
			return err
		}
	}
	return nil
}
