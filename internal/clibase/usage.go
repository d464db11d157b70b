// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"strmatch/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// formats lists the --output values the tool accepts; extra prints
// tool-specific sections (usage line, tool flags).
func UsageCommon(fs *flag.FlagSet, name string, formats []string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – STR profile matching\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -p, --profiles file         STR profile table (name,FRAG,FRAG,...) CSV or TSV")
		fmt.Fprintln(out, "  -s, --sequences file        Sample file(s) (repeatable), raw or FASTA, or '-' for STDIN")
		fmt.Fprintf(out, "      --delimiter string      Profile delimiter: , | tab | ; (empty = by extension) [%s]\n", def("delimiter"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", strings.Join(formats, " | "), def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress tsv header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           Config file (yaml, toml, json); STRMATCH_* env also read")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Per-sample progress on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
