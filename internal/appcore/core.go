// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"genesmith/core/decoder"
	"genesmith/internal/cmdutil"
	"genesmith/internal/pipeline"
	"genesmith/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK       = 0
	ExitNoRecord = 1 // default for --no-match-exit-code
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	SeqFiles []string

	Quiet           bool
	NoMatchExitCode int
	BufSize         int
}

// VisitorFunc turns one job into zero or more outputs.
type VisitorFunc[T any] func(ctx context.Context, job decoder.Job) ([]T, error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// cancelOnError stops the producer at the first failed write, so no further
// jobs are decoded for a dead output.
type cancelOnError struct {
	w      io.Writer
	cancel context.CancelFunc
}

func (c cancelOnError) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		c.cancel()
	}
	return n, err
}

// Run drives every job through visit and streams the outputs to the writer
// built by wf. Jobs run one at a time on the calling side of an errgroup;
// the writer drains on the other. It returns the process exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	lister decoder.JobLister,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)
	log := cmdutil.Logger{Out: stderr, Quiet: o.Quiet}

	bufSize := o.BufSize
	if bufSize <= 0 {
		bufSize = 64
	}
	runCtx, cancel := context.WithCancel(parent)
	defer cancel()
	inCh, writeErr := wf.Start(cancelOnError{w: outw, cancel: cancel}, bufSize)

	g, ctx := errgroup.WithContext(runCtx)
	var (
		total      int
		perr, werr error
	)
	g.Go(func() error {
		werr = <-writeErr
		return werr
	})
	g.Go(func() error {
		defer close(inCh)
		total, perr = cmdutil.RunStream[T](
			ctx,
			pipeline.Config{Warn: log.Warnf},
			o.SeqFiles,
			lister,
			visit,
			func(x T) error {
				select {
				case inCh <- x:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		)
		return perr
	})
	_ = g.Wait()

	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			if parent.Err() == nil {
				// stopped by a write failure the writer chose to ignore
				return ExitOK
			}
			return ExitCanceled
		}
		var mle *decoder.ModelLoadError
		if errors.As(perr, &mle) {
			fmt.Fprintln(stderr, perr)
			return ExitUsage
		}
		fmt.Fprintln(stderr, perr)
		return ExitIO
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
