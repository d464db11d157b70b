package countcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"strmatch-core/str"
	"strmatch/internal/clibase"
	"strmatch/internal/cliutil"
)

type Options struct {
	clibase.Common

	Fragments []str.Fragment
}

// fragValue collects repeatable --fragment values.
type fragValue struct{ dst *[]str.Fragment }

func (f *fragValue) String() string {
	if f.dst == nil {
		return ""
	}
	return fmt.Sprint(*f.dst)
}

func (f *fragValue) Set(v string) error {
	if !str.ValidFragment(v) {
		return fmt.Errorf("fragment %q must be %d characters", v, str.FragmentWidth)
	}
	*f.dst = append(*f.dst, str.Fragment(v))
	return nil
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, clibase.Formats, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --fragment AGAT [--fragment AATG ...] sample.txt\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --profiles db.csv sample.txt\n", name)

		_, _ = fmt.Fprintln(out, "\nCounting:")
		_, _ = fmt.Fprintf(out, "  -f, --fragment string       %d-character repeat unit (repeatable)\n", str.FragmentWidth)
	})
	return fs
}

// PrintExamples prints a focused quickstart for strcount.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "strcount", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Longest run of back-to-back repeats per fragment.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  strcount -f AGAT -f TATC sequences/1.txt")
	})
}

func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("strcount"), argv) }

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	fv := &fragValue{dst: &o.Fragments}
	fs.Var(fv, "fragment", "repeat unit to count (repeatable)")
	fs.Var(fv, "f", "alias of --fragment")

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
	if _, err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}

	switch {
	case len(o.Fragments) > 0 && c.ProfileFile != "":
		return o, errors.New("--fragment conflicts with --profiles")
	case len(o.Fragments) == 0 && c.ProfileFile == "":
		return o, errors.New("provide --fragment or --profiles")
	}
	if err := clibase.Validate(&c, clibase.Formats); err != nil {
		return o, err
	}
	o.Common = c
	return o, nil
}
