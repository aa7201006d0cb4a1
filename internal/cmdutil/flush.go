package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"genesmith/internal/writers"
)

// FlushExit flushes w and returns code, or 3 on a flush error other than a
// closed pipe.
func FlushExit(w *bufio.Writer, stderr io.Writer, code int) int {
	err := w.Flush()
	switch {
	case writers.IsBrokenPipe(err):
		return 0
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
