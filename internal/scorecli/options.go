// internal/scorecli/options.go
package scorecli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"genesmith/internal/clibase"
	"genesmith/internal/config"
	"genesmith/internal/output"
)

type Options struct {
	clibase.Common

	SeqFiles []string
	Frames   []int
	Header   bool // true unless --no-header
	Accepted bool // only report accepted candidates
}

// Formats accepted by genesmith-score --output.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatFASTA}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "candidate CDS scoring", strings.Join(Formats, " | "), func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] candidates.fa [...]\n", name)

		_, _ = fmt.Fprintln(out, "\nCandidates:")
		_, _ = fmt.Fprintf(out, "      --frames list           Reading frames to score: 0,1,2 or all [%s]\n", def("frames"))
		_, _ = fmt.Fprintf(out, "      --accepted-only         Report accepted candidates only [%s]\n", def("accepted-only"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress the header line of text output [%s]\n", def("no-header"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("genesmith-score"), nil, nil) }

// PrintExamples prints a short quickstart for genesmith-score.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "genesmith-score", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Score every candidate CDS against a profile:")
		_, _ = fmt.Fprintln(w, "  genesmith-score -p kinase.pssm candidates.fa")
		_, _ = fmt.Fprintln(w, "\nTry all three frames, keep accepted proteins as FASTA:")
		_, _ = fmt.Fprintln(w, "  genesmith-score -s ref.faa --frames all -o fasta candidates.fa")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string, env config.Env) (Options, error) {
	var o Options
	var help, showExamples, noHeader bool
	var frames string

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.StringVar(&frames, "frames", "0", "reading frames: comma list of 0..2 or all")
	fs.BoolVar(&o.Accepted, "accepted-only", false, "report accepted candidates only [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

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

	if err := clibase.AfterParse(&c, posArgs, Formats...); err != nil {
		return o, err
	}
	if len(c.Args) == 0 {
		return o, errors.New("at least one candidate FASTA file is required")
	}
	fr, err := ParseFrames(frames)
	if err != nil {
		return o, err
	}

	o.Common = c
	o.SeqFiles = c.Args
	o.Frames = fr
	o.Header = !noHeader
	return o, nil
}

// ParseFrames reads "all" or a comma list of frames 0..2. Duplicates are
// dropped; order is kept.
func ParseFrames(s string) ([]int, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return []int{0, 1, 2}, nil
	}
	var out []int
	seen := [3]bool{}
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 0 || n > 2 {
			return nil, fmt.Errorf("invalid --frames entry %q (want 0, 1, 2 or all)", tok)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}
