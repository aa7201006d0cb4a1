// Package config supplies flag defaults from the environment.
//
// Every long flag --some-name may be defaulted by GENESMITH_SOME_NAME, taken from
// the process environment or from a dotenv file (.env in the working
// directory, or the file named by GENESMITH_DOTENV). The process environment
// wins over the file; flags given on the command line win over both.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment key.
const Prefix = "GENESMITH_"

// DotenvVar names the dotenv file to read instead of .env.
const DotenvVar = Prefix + "DOTENV"

// Env is a snapshot of GENESMITH_* settings.
type Env map[string]string

// Key returns the environment key for a flag name.
func Key(flagName string) string {
	return Prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Load reads the dotenv file (a missing file is not an error) and overlays
// the process environment.
func Load() (Env, error) {
	path := os.Getenv(DotenvVar)
	if path == "" {
		path = ".env"
	}
	env := Env{}
	file, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range file {
			if strings.HasPrefix(k, Prefix) {
				env[k] = v
			}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, Prefix) {
			env[k] = v
		}
	}
	return env, nil
}

// Apply sets the default of every flag in fs that has an entry in env. Call
// it after the flags are defined and before fs.Parse. Single-letter flags are
// skipped: they are aliases, set through their long name, and upper-casing
// would merge pairs such as -p and -P.
func (e Env) Apply(fs *flag.FlagSet) error {
	var firstErr error
	fs.VisitAll(func(f *flag.Flag) {
		if len(f.Name) == 1 {
			return
		}
		v, ok := e[Key(f.Name)]
		if !ok || firstErr != nil {
			return
		}
		if err := f.Value.Set(v); err != nil {
			firstErr = fmt.Errorf("%s=%q: %w", Key(f.Name), v, err)
			return
		}
		f.DefValue = v
	})
	return firstErr
}
