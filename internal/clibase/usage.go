// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"genesmith/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints
// tool-specific sections before the shared scoring/output blocks; outputs is
// the --output help text for this tool.
func UsageCommon(fs *flag.FlagSet, name, tagline, outputs string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintln(out, "  -g, --code file             Genetic code table (default: standard code)")
		fmt.Fprintln(out, "  -p, --profile file          Protein profile (PSSM) scored against each candidate")
		fmt.Fprintf(out, "  -P, --profile-weight float  Weight of the profile score [%s]\n", def("profile-weight"))
		fmt.Fprintf(out, "      --profile-mode string   Profile placement: global | local [%s]\n", def("profile-mode"))
		fmt.Fprintln(out, "  -s, --protein file          Reference protein (FASTA, first record) for alignment")
		fmt.Fprintf(out, "  -S, --protein-weight float  Weight of the alignment score [%s]\n", def("protein-weight"))
		fmt.Fprintf(out, "      --matrix string         BLOSUM62 | IDENTITY | matrix file [%s]\n", def("matrix"))
		fmt.Fprintf(out, "      --cache-size int        Memoized candidate scores (0=off) [%s]\n", def("cache-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", outputs, def("output"))
		fmt.Fprintf(out, "      --sort                  Sort outputs deterministically [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing is reported [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "\nEvery flag may be defaulted by GENESMITH_<FLAG_NAME> in the environment or .env.")
	}
}
