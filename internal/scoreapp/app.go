// internal/scoreapp/app.go
package scoreapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"genesmith/core/decoder"
	"genesmith/core/score"
	"genesmith/core/translate"
	"genesmith/internal/appcore"
	"genesmith/internal/clibase"
	"genesmith/internal/cmdutil"
	"genesmith/internal/config"
	"genesmith/internal/output"
	"genesmith/internal/scorecli"
	"genesmith/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := scorecli.NewFlagSet("genesmith-score")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = scorecli.ParseArgs(fs, []string{"-h"}, nil)
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, appcore.ExitOK)
	}

	env, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	opts, err := scorecli.ParseArgs(fs, argv, env)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			scorecli.PrintExamples(outw)
			return cmdutil.FlushExit(outw, stderr, appcore.ExitOK)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.FlushExit(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "genesmith-score version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, appcore.ExitOK)
	}

	log := cmdutil.Logger{Out: stderr, Quiet: opts.Quiet}
	scorer, err := appcore.BuildScorer(parent, opts.Common, log)
	if err != nil {
		log.Errorf("%v", err)
		return appcore.ExitUsage
	}

	coreOpts := appcore.Options{
		SeqFiles:        opts.SeqFiles,
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	visit := Visitor{Scorer: scorer, Frames: opts.Frames, AcceptedOnly: opts.Accepted}
	writer := appcore.NewScoreWriterFactory(opts.Output, opts.Sort, opts.Header)
	code := appcore.Run[output.ScoreRow](parent, stdout, stderr, coreOpts, nil, visit.Visit, writer)
	appcore.LogStats(log, scorer)
	return code
}

// Visitor scores one sequence in each requested reading frame.
type Visitor struct {
	Scorer       *score.Scorer
	Frames       []int
	AcceptedOnly bool
}

func (v Visitor) Visit(_ context.Context, job decoder.Job) ([]output.ScoreRow, error) {
	rows := make([]output.ScoreRow, 0, len(v.Frames))
	for _, f := range v.Frames {
		if f >= len(job.Seq) {
			continue
		}
		cand := job.Seq[f:]
		r := v.Scorer.Evaluate(cand)
		if v.AcceptedOnly && !r.Accepted() {
			continue
		}
		rows = append(rows, output.ScoreRow{
			ID:      job.ID,
			Frame:   f,
			Protein: string(translate.Frame(v.Scorer.Code(), job.Seq, f)),
			Result:  r,
		})
	}
	return rows, nil
}
