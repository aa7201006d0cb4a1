// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"genesmith/core/profile"
)

// Common holds CLI fields shared by genesmith and genesmith-score.
type Common struct {
	// Scoring
	CodeFile      string
	ProfileFile   string
	ProfileWeight float64
	ProfileMode   string
	ProteinFile   string
	ProteinWeight float64
	Matrix        string
	CacheSize     int

	// Output
	Output          string
	Sort            bool
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool

	// Positionals, globs expanded.
	Args []string
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	// Scoring
	fs.StringVar(&c.CodeFile, "code", "", "genetic code: NCBI table number or table file (default: 1)")
	fs.StringVar(&c.CodeFile, "g", "", "alias of --code")
	fs.StringVar(&c.ProfileFile, "profile", "", "protein profile (PSSM) file")
	fs.StringVar(&c.ProfileFile, "p", "", "alias of --profile")
	fs.Float64Var(&c.ProfileWeight, "profile-weight", 1, "weight of the profile score [1]")
	fs.Float64Var(&c.ProfileWeight, "P", 1, "alias of --profile-weight")
	fs.StringVar(&c.ProfileMode, "profile-mode", "global", "profile placement: global | local [global]")
	fs.StringVar(&c.ProteinFile, "protein", "", "reference protein FASTA for alignment")
	fs.StringVar(&c.ProteinFile, "s", "", "alias of --protein")
	fs.Float64Var(&c.ProteinWeight, "protein-weight", 1, "weight of the alignment score [1]")
	fs.Float64Var(&c.ProteinWeight, "S", 1, "alias of --protein-weight")
	fs.StringVar(&c.Matrix, "matrix", "BLOSUM62", "substitution matrix: BLOSUM62 | IDENTITY | file [BLOSUM62]")
	fs.IntVar(&c.CacheSize, "cache-size", 4096, "memoized candidate scores (0=off) [4096]")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output format [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs deterministically [false]")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing is reported [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positionals and runs shared validation. formats lists
// the --output values the tool accepts.
func AfterParse(c *Common, posArgs []string, formats ...string) error {
	exp, err := ExpandPositionals(posArgs)
	if err != nil {
		return err
	}
	c.Args = exp
	return Validate(c, formats...)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats ...string) error {
	ok := false
	for _, f := range formats {
		if c.Output == f {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("invalid --output %q (want one of %v)", c.Output, formats)
	}
	if _, err := profile.ParseMode(c.ProfileMode); err != nil {
		return err
	}
	if !finite(c.ProfileWeight) || !finite(c.ProteinWeight) {
		return errors.New("--profile-weight and --protein-weight must be finite")
	}
	if c.CacheSize < 0 {
		return errors.New("--cache-size must be ≥ 0")
	}
	if c.Matrix == "" {
		return errors.New("--matrix must not be empty")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
