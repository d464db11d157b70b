package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Defaults() {
		t.Fatalf("got %+v, want defaults %+v", c, Defaults())
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strmatch.yaml")
	data := "output: json\nunique: true\nno_match_exit_code: 4\ndelimiter: tab\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Output != "json" || !c.Unique || c.NoMatchExitCode != 4 || c.Delimiter != "tab" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if !c.Header {
		t.Fatal("header default lost")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strmatch.toml")
	if err := os.WriteFile(path, []byte("quiet = true\noutput = \"tsv\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Quiet || c.Output != "tsv" {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("STRMATCH_OUTPUT", "jsonl")
	t.Setenv("STRMATCH_NO_MATCH_EXIT_CODE", "7")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Output != "jsonl" || c.NoMatchExitCode != 7 {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
