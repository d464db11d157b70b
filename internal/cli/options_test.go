// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"strmatch/internal/clibase"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPositionalProfileForm(t *testing.T) {
	o := mustParse(t, "db.csv", "1.txt")
	if o.ProfileFile != "db.csv" || len(o.SeqFiles) != 1 || o.SeqFiles[0] != "1.txt" {
		t.Fatalf("bad parse: %+v", o)
	}
	if o.Output != "text" || !o.Header || o.Unique || o.NoMatchExitCode != 0 {
		t.Fatalf("bad defaults: %+v", o)
	}
}

func TestProfilesFlagKeepsAllPositionals(t *testing.T) {
	o := mustParse(t, "-p", "db.csv", "1.txt", "2.txt", "-s", "3.txt")
	if o.ProfileFile != "db.csv" || len(o.SeqFiles) != 3 {
		t.Fatalf("bad parse: %+v", o)
	}
	if o.SeqFiles[0] != "3.txt" {
		t.Fatalf("--sequences should come before positionals: %v", o.SeqFiles)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "db.csv", "1.txt", "--output", "json", "--unique", "--no-match-exit-code", "3")
	if o.Output != "json" || !o.Unique || o.NoMatchExitCode != 3 {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestPrettyOutput(t *testing.T) {
	o := mustParse(t, "-o", "pretty", "db.csv", "1.txt")
	if o.Output != "pretty" {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestMissingProfiles(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"1.txt"}); err == nil {
		t.Fatal("expected error without a profile table")
	}
}

func TestMissingSamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--profiles", "db.csv"}); err == nil {
		t.Fatal("expected error without samples")
	}
}

func TestInvalidValues(t *testing.T) {
	bad := [][]string{
		{"db.csv", "1.txt", "--output", "xml"},
		{"db.csv", "1.txt", "--no-match-exit-code", "300"},
		{"db.csv", "1.txt", "--delimiter", "|"},
		{"-p", "-", "-"},
	}
	for _, args := range bad {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}

func TestConfigFileDefaults(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "strmatch.yaml")
	if err := os.WriteFile(cfg, []byte("output: tsv\nunique: true\nno_match_exit_code: 5\nheader: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "--config", cfg, "db.csv", "1.txt")
	if o.Output != "tsv" || !o.Unique || o.NoMatchExitCode != 5 || o.Header {
		t.Fatalf("config not applied: %+v", o)
	}
	// Explicit flags win over the file.
	o = mustParse(t, "--config", cfg, "-o", "json", "--no-match-exit-code", "1", "db.csv", "1.txt")
	if o.Output != "json" || o.NoMatchExitCode != 1 || !o.Unique {
		t.Fatalf("flags should override config: %+v", o)
	}
}

func TestPositionalGlob(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"1.txt", "2.txt"} {
		_ = os.WriteFile(filepath.Join(dir, n), []byte("AGAT\n"), 0o644)
	}
	o := mustParse(t, "db.csv", filepath.Join(dir, "*.txt"))
	if len(o.SeqFiles) != 2 {
		t.Fatalf("want 2 samples, got %v", o.SeqFiles)
	}
}
