package scorecli

import (
	"flag"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"cands.fa", "--frames", "2,0", "--no-header", "-o", "fasta"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(o.Frames, []int{2, 0}) || o.Header || o.Output != "fasta" {
		t.Errorf("got %+v", o)
	}
	if len(o.SeqFiles) != 1 || o.SeqFiles[0] != "cands.fa" {
		t.Errorf("seq files %v", o.SeqFiles)
	}
}

func TestParseArgsDefaults(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(o.Frames, []int{0}) || !o.Header || o.Accepted {
		t.Errorf("defaults %+v", o)
	}
}

func TestParseArgsErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"no input": {},
		"frame":    {"--frames", "3", "a.fa"},
		"format":   {"-o", "xml", "a.fa"},
	} {
		if _, err := ParseArgs(newFS(), args, nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseFrames(t *testing.T) {
	for in, want := range map[string][]int{
		"all":   {0, 1, 2},
		"ALL":   {0, 1, 2},
		"1":     {1},
		"0,0,1": {0, 1},
	} {
		got, err := ParseFrames(in)
		if err != nil || !reflect.DeepEqual(got, want) {
			t.Errorf("ParseFrames(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFrames(""); err == nil {
		t.Errorf("empty should fail")
	}
}
