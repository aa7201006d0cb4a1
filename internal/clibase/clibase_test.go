package clibase

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	Register(fs, &c)
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"model.gff", "--sort", "-o", "json", "seq.fa", "--reps=3", "-", "--", "-odd"})
	if len(flagArgs) != 4 || flagArgs[2] != "json" || flagArgs[3] != "--reps=3" {
		t.Fatalf("flags: %v", flagArgs)
	}
	if len(posArgs) != 4 || posArgs[0] != "model.gff" || posArgs[2] != "-" || posArgs[3] != "-odd" {
		t.Fatalf("positionals: %v", posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(">a\nA\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{"orf:minaa=5", filepath.Join(dir, "*.fa"), "-"})
	if err != nil || len(got) != 4 || got[0] != "orf:minaa=5" || got[3] != "-" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.none")}); err == nil {
		t.Fatalf("empty glob should fail")
	}
}

func TestValidate(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	Register(fs, &c)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if err := Validate(&c, "text", "json"); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for name, mut := range map[string]func(*Common){
		"format": func(c *Common) { c.Output = "fasta" },
		"mode":   func(c *Common) { c.ProfileMode = "semi" },
		"cache":  func(c *Common) { c.CacheSize = -1 },
		"matrix": func(c *Common) { c.Matrix = "" },
		"exit":   func(c *Common) { c.NoMatchExitCode = 300 },
	} {
		cc := c
		mut(&cc)
		if err := Validate(&cc, "text", "json"); err == nil {
			t.Fatalf("case %s: expected error", name)
		}
	}
}
