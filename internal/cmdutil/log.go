// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Logger writes stderr diagnostics. Warnings and info lines are dropped when
// Quiet is set; errors never are.
type Logger struct {
	Out   io.Writer
	Quiet bool
}

func (l Logger) Warnf(format string, a ...any) { Warnf(l.Out, l.Quiet, format, a...) }

func (l Logger) Infof(format string, a ...any) {
	if l.Quiet {
		return
	}
	_, _ = fmt.Fprintf(l.Out, "INFO: "+format+"\n", a...)
}

func (l Logger) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(l.Out, "error: "+format+"\n", a...)
}
