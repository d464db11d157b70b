// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"strmatch/internal/clibase"
	"strmatch/internal/cliutil"
)

// Options holds all strmatch flags and arguments.
type Options struct {
	clibase.Common

	Unique          bool
	NoMatchExitCode int
}

// Formats accepted by strmatch --output.
var Formats = append(append([]string(nil), clibase.Formats...), "pretty")

// NewFlagSet returns a FlagSet with strmatch usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, Formats, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --profiles db.csv sample.txt [more samples...]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] db.csv sample.txt\n", name)

		_, _ = fmt.Fprintln(out, "\nMatching:")
		_, _ = fmt.Fprintf(out, "      --unique                Report 'No match' when several profiles match [%s]\n", def("unique"))
		_, _ = fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when a sample has no match [%s]\n", def("no-match-exit-code"))
	})
	return fs
}

// PrintExamples prints a focused quickstart for strmatch.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "strmatch", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Identify whose DNA a sample is from STR repeat counts.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  strmatch databases/small.csv sequences/1.txt")
		_, _ = fmt.Fprintln(w, "\nSeveral samples, one TSV row each:")
		_, _ = fmt.Fprintln(w, "  strmatch --profiles databases/large.csv --output tsv 'sequences/*.txt'")
	})
}

func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("strmatch"), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Without --profiles, the first of two or more positionals is the profile table.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fs.BoolVar(&o.Unique, "unique", false, "report No match when several profiles match [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when a sample has no match [0]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.Split(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if c.ProfileFile == "" && len(posArgs) >= 2 {
		c.ProfileFile, posArgs = posArgs[0], posArgs[1:]
	}
	cfg, err := clibase.AfterParse(fs, &c, noHeader, posArgs)
	if err != nil {
		return o, err
	}
	set := clibase.SetFlags(fs)
	if !set["unique"] {
		o.Unique = cfg.Unique
	}
	if !set["no-match-exit-code"] {
		o.NoMatchExitCode = cfg.NoMatchExitCode
	}

	if c.ProfileFile == "" {
		return o, errors.New("provide --profiles or a profile table as the first argument")
	}
	if err := clibase.Validate(&c, Formats); err != nil {
		return o, err
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return o, errors.New("--no-match-exit-code must be between 0 and 255")
	}

	o.Common = c
	return o, nil
}
