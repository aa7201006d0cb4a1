package cmdutil

import (
	"bytes"
	"testing"
)

func TestLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Out: &buf, Quiet: true}
	l.Warnf("w %d", 1)
	l.Infof("i %d", 2)
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
	l.Errorf("e %d", 3)
	if got := buf.String(); got != "error: e 3\n" {
		t.Fatalf("errors must bypass quiet, got %q", got)
	}
}

func TestLoggerPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Out: &buf}
	l.Warnf("low support %.1f", 2.5)
	l.Infof("done")
	want := "WARN: low support 2.5\nINFO: done\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}
