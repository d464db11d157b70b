// internal/countapp/app.go
package countapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"strmatch-core/profile"
	"strmatch-core/sequence"
	"strmatch-core/str"
	"strmatch/internal/clibase"
	"strmatch/internal/cmdutil"
	"strmatch/internal/countcli"
	"strmatch/internal/engine"
	"strmatch/internal/version"
	"strmatch/internal/writers"
)

// RunContext runs strcount: report the longest repeat of each fragment per sample.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := countcli.NewFlagSet("strcount")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := countcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			countcli.PrintExamples(outw)
			return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.Finish(outw, stderr, cmdutil.ExitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "strcount version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	}

	frags := opts.Fragments
	if opts.ProfileFile != "" {
		comma, _ := clibase.DelimiterRune(opts.Delimiter)
		pool, err := profile.Load(opts.ProfileFile, profile.Options{Comma: comma})
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return cmdutil.ExitUsage
		}
		frags = str.Fragments(pool)
		if len(frags) == 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%s has no candidate rows; nothing to count", opts.ProfileFile)
		}
	}

	sink, err := writers.NewCountStream(opts.Output, outw, writers.Options{Header: opts.Header, Fragments: frags})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}

	_, err = cmdutil.RunStream(parent, opts.SeqFiles,
		func(s sequence.Sample) (bool, []engine.Count, error) {
			cmdutil.Debugf(stderr, opts.Verbose, "%s (%s): %d bp", s.ID, s.Source, len(s.Seq))
			return true, engine.CountFragments(frags, s), nil
		},
		func(list []engine.Count) error {
			for _, c := range list {
				if err := sink.Send(c); err != nil {
					return err
				}
			}
			return nil
		},
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if parent.Err() != nil {
			return cmdutil.Finish(outw, stderr, cmdutil.ExitCanceled)
		}
		if writers.IsBrokenPipe(err) {
			return cmdutil.ExitOK
		}
		return cmdutil.Finish(outw, stderr, cmdutil.ExitUsage)
	}
	if err := sink.Close(); err != nil {
		if writers.IsBrokenPipe(err) {
			return cmdutil.ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitOutput
	}
	return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
