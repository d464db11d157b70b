// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"strmatch/internal/cliutil"
	"strmatch/internal/config"
)

// Common holds CLI fields shared by strmatch and strcount.
type Common struct {
	// Input
	ProfileFile string
	SeqFiles    []string
	Delimiter   string

	// Output
	Output string // text|tsv|json|jsonl
	Header bool

	// Misc
	ConfigFile string
	Quiet      bool
	Verbose    bool
	Version    bool
}

// Formats accepted by --output by every tool.
var Formats = []string{"text", "tsv", "json", "jsonl"}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that AfterParse folds into Common.Header.
func Register(fs *flag.FlagSet, c *Common) *bool {
	d := config.Defaults()

	// Inputs
	fs.StringVar(&c.ProfileFile, "profiles", "", "STR profile table (CSV/TSV)")
	fs.StringVar(&c.ProfileFile, "p", "", "alias of --profiles")
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "sample file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.StringVar(&c.Delimiter, "delimiter", d.Delimiter, "profile table delimiter: , | tab | ; (default by extension)")

	// Output
	fs.StringVar(&c.Output, "output", d.Output, "output: text | tsv | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", d.Output, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", !d.Header, "suppress header line in tsv [false]")

	// Misc
	fs.StringVar(&c.ConfigFile, "config", "", "config file (yaml, toml, json)")
	fs.BoolVar(&c.Quiet, "quiet", d.Quiet, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", d.Quiet, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", d.Verbose, "print per-sample progress to stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// SetFlags returns the names of flags given explicitly on the command line.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// AfterParse finalizes the header, loads the config file / environment and
// applies it to every shared flag the user did not set, then expands
// positionals into SeqFiles. The loaded config is returned for tool-specific
// settings.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string) (config.Config, error) {
	c.Header = !*noHeader

	cfg, err := config.Load(c.ConfigFile)
	if err != nil {
		return cfg, err
	}
	set := SetFlags(fs)
	if !set["output"] && !set["o"] {
		c.Output = cfg.Output
	}
	if !set["no-header"] {
		c.Header = cfg.Header
	}
	if !set["quiet"] && !set["q"] {
		c.Quiet = cfg.Quiet
	}
	if !set["verbose"] {
		c.Verbose = cfg.Verbose
	}
	if !set["delimiter"] {
		c.Delimiter = cfg.Delimiter
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandGlobs(posArgs)
		if err != nil {
			return cfg, err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return cfg, nil
}

// DelimiterRune maps a --delimiter value to a rune; 0 means "by extension".
func DelimiterRune(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case "tab", "\t", `\t`:
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	}
	return 0, fmt.Errorf("invalid --delimiter %q", s)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats []string) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sample file is required")
	}
	stdin := 0
	if c.ProfileFile == "-" {
		stdin++
	}
	for _, s := range c.SeqFiles {
		if s == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be used only once")
	}
	ok := false
	for _, f := range formats {
		if c.Output == f {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if _, err := DelimiterRune(c.Delimiter); err != nil {
		return err
	}
	return nil
}
