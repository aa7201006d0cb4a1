// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"genesmith/core/decoder"
	"genesmith/internal/clibase"
	"genesmith/internal/config"
	"genesmith/internal/output"
)

// DefaultReps matches the traceback count of a sampling decoder run.
const DefaultReps = 1000

// Options holds all genesmith flags and arguments.
type Options struct {
	clibase.Common

	// Decoding
	Model    string
	SeqFiles []string
	Reps     int

	// Extraction
	LabelsFile string
	Source     string
	MinSupport float64
	Rank       bool
}

// Formats accepted by genesmith --output.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL}

// NewFlagSet returns a FlagSet with the genesmith usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "gene structure scoring", strings.Join(Formats, " | "), func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] MODEL [seq.fa ...]\n", name)
		_, _ = fmt.Fprintf(out, "  MODEL is scheme:arg with scheme one of %s; a bare path is a trace file.\n", strings.Join(decoder.Schemes(), ", "))

		_, _ = fmt.Fprintln(out, "\nDecoding:")
		_, _ = fmt.Fprintln(out, "  -m, --model string          Decoder model (alternative to the MODEL positional)")
		_, _ = fmt.Fprintf(out, "  -t, --reps int              Sampled paths per sequence (0=single best path) [%s]\n", def("reps"))

		_, _ = fmt.Fprintln(out, "\nExtraction:")
		_, _ = fmt.Fprintln(out, "      --labels file           YAML table mapping decoder labels to roles")
		_, _ = fmt.Fprintf(out, "      --source string         Source column of CDS lines [%s]\n", def("source"))
		_, _ = fmt.Fprintf(out, "      --min-support float     Drop isoforms below this percentage of samples [%s]\n", def("min-support"))
		_, _ = fmt.Fprintf(out, "      --rank                  List isoforms by descending support [%s]\n", def("rank"))
	})
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("genesmith"), nil, nil) }

// PrintExamples prints a short quickstart for genesmith.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "genesmith", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Score ORFs against a profile and report the best gene per sequence:")
		_, _ = fmt.Fprintln(w, "  genesmith --reps 0 -p kinase.pssm orf:minaa=50 contigs.fa")
		_, _ = fmt.Fprintln(w, "\nSample 1000 paths and report isoform support:")
		_, _ = fmt.Fprintln(w, "  genesmith -p kinase.pssm -s ref.faa orf:seed=7 contigs.fa.gz")
		_, _ = fmt.Fprintln(w, "\nExtract CDS records from a decoder trace:")
		_, _ = fmt.Fprintln(w, "  genesmith --labels labels.yaml --output jsonl trace:decoded.gff")
	})
}

// ParseArgs registers and parses all flags. Values in env become flag
// defaults before parsing, so explicit flags win.
func ParseArgs(fs *flag.FlagSet, argv []string, env config.Env) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.StringVar(&o.Model, "model", "", "decoder model (trace:FILE, orf:OPTS or a trace path)")
	fs.StringVar(&o.Model, "m", "", "alias of --model")
	fs.IntVar(&o.Reps, "reps", DefaultReps, "sampled paths per sequence (0=single best path)")
	fs.IntVar(&o.Reps, "t", DefaultReps, "alias of --reps")
	fs.StringVar(&o.LabelsFile, "labels", "", "YAML label-role table")
	fs.StringVar(&o.Source, "source", "genesmith", "source column of CDS lines")
	fs.Float64Var(&o.MinSupport, "min-support", 0, "minimum isoform support in percent")
	fs.BoolVar(&o.Rank, "rank", false, "list isoforms by descending support [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	if err := env.Apply(fs); err != nil {
		return o, err
	}

	flagArgs, posArgs := clibase.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if o.Model == "" {
		if len(posArgs) == 0 {
			return o, errors.New("a decoder model is required (MODEL positional or --model)")
		}
		o.Model, posArgs = posArgs[0], posArgs[1:]
	}
	if err := clibase.AfterParse(&c, posArgs, Formats...); err != nil {
		return o, err
	}
	o.SeqFiles = c.Args

	if o.Reps < 0 {
		return o, errors.New("--reps must be ≥ 0")
	}
	if o.MinSupport < 0 || o.MinSupport > 100 {
		return o, errors.New("--min-support must be between 0 and 100")
	}
	if strings.ContainsAny(o.Source, "\t\n") {
		return o, errors.New("--source must not contain tabs or newlines")
	}

	o.Common = c
	return o, nil
}
