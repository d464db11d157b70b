// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"strmatch-core/profile"
	"strmatch-core/sequence"
	"strmatch/internal/cli"
	"strmatch/internal/clibase"
	"strmatch/internal/cmdutil"
	"strmatch/internal/engine"
	"strmatch/internal/version"
	"strmatch/internal/writers"
)

// RunContext runs strmatch: load profiles, type every sample, write results.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("strmatch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "strmatch version %s\n", version.Version)
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	}

	comma, _ := clibase.DelimiterRune(opts.Delimiter)
	pool, err := profile.Load(opts.ProfileFile, profile.Options{Comma: comma})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}
	if len(pool) == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%s has no candidate profiles", opts.ProfileFile)
	}

	eng := engine.New(pool, engine.Config{Unique: opts.Unique})
	sink, err := writers.NewMatchStream(opts.Output, outw, writers.Options{Header: opts.Header, Fragments: eng.Fragments(), Pool: pool})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return cmdutil.ExitUsage
	}

	unmatched := 0
	n, err := cmdutil.RunStream(parent, opts.SeqFiles,
		func(s sequence.Sample) (bool, engine.Result, error) {
			r := eng.Identify(s)
			cmdutil.Debugf(stderr, opts.Verbose, "%s (%s): %d bp, match=%s", r.SampleID, r.SourceFile, r.Length, r.Match)
			if r.Ambiguous {
				cmdutil.Warnf(stderr, opts.Quiet, "sample %s matches %d profiles: %s", r.SampleID, len(r.Candidates), strings.Join(r.Candidates, ", "))
			}
			if !r.Matched() {
				unmatched++
			}
			return true, r, nil
		},
		sink.Send,
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
	cmdutil.Debugf(stderr, opts.Verbose, "%d sample(s), %d without a match", n, unmatched)

	code := cmdutil.ExitOK
	if unmatched > 0 {
		code = opts.NoMatchExitCode
	}
	return cmdutil.Finish(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
