package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("quiet", false, "")
	fs.String("output", "text", "")
	return fs
}

func TestSplit(t *testing.T) {
	flags, pos := Split(newFS(), []string{"db.csv", "--quiet", "1.txt", "--output", "json", "-", "--", "--odd-name.txt"})
	if !reflect.DeepEqual(flags, []string{"--quiet", "--output", "json"}) {
		t.Fatalf("flags = %v", flags)
	}
	if !reflect.DeepEqual(pos, []string{"db.csv", "1.txt", "-", "--odd-name.txt"}) {
		t.Fatalf("positionals = %v", pos)
	}
}

func TestSplitInlineValue(t *testing.T) {
	flags, pos := Split(newFS(), []string{"--output=tsv", "a.txt"})
	if len(flags) != 1 || len(pos) != 1 || pos[0] != "a.txt" {
		t.Fatalf("unexpected split: %v / %v", flags, pos)
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"2.txt", "1.txt", "db.csv"} {
		_ = os.WriteFile(filepath.Join(dir, n), []byte("AGAT\n"), 0o644)
	}
	got, err := ExpandGlobs([]string{filepath.Join(dir, "*.txt"), "-"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{filepath.Join(dir, "1.txt"), filepath.Join(dir, "2.txt"), "-"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExpandGlobsNoMatch(t *testing.T) {
	if _, err := ExpandGlobs([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("expected error for unmatched glob")
	}
}
