// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"genesmith/core/decoder"
	"genesmith/core/gene"
	"genesmith/internal/appcore"
	"genesmith/internal/cli"
	"genesmith/internal/clibase"
	"genesmith/internal/cmdutil"
	"genesmith/internal/config"
	"genesmith/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("genesmith")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}, nil)
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, appcore.ExitOK)
	}

	env, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	opts, err := cli.ParseArgs(fs, argv, env)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "genesmith version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, appcore.ExitOK)
	}

	log := cmdutil.Logger{Out: stderr, Quiet: opts.Quiet}

	scorer, err := appcore.BuildScorer(parent, opts.Common, log)
	if err != nil {
		log.Errorf("%v", err)
		return appcore.ExitUsage
	}
	dec, err := decoder.Open(opts.Model, scorer.Callback())
	if err != nil {
		log.Errorf("%v", err)
		return appcore.ExitUsage
	}
	classifier := gene.DefaultClassifier()
	if opts.LabelsFile != "" {
		if classifier, err = gene.LoadClassifier(opts.LabelsFile); err != nil {
			log.Errorf("labels: %v", err)
			return appcore.ExitUsage
		}
	}
	extractor := gene.NewExtractor(classifier, opts.Source)

	lister, _ := dec.(decoder.JobLister)
	if len(opts.SeqFiles) == 0 && lister == nil {
		log.Errorf("model %q needs sequence files", opts.Model)
		return appcore.ExitUsage
	}

	coreOpts := appcore.Options{
		SeqFiles:        opts.SeqFiles,
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	visit := Visitor{Decoder: dec, Extractor: extractor, Reps: opts.Reps, MinSupport: opts.MinSupport, Rank: opts.Rank, Warn: log.Warnf}
	writer := appcore.NewCDSWriterFactory(opts.Output, opts.Sort)
	code := appcore.Run[gene.CDSRecord](parent, stdout, stderr, coreOpts, lister, visit.Visit, writer)
	appcore.LogStats(log, scorer)
	return code
}
