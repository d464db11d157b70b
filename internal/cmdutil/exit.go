package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"strmatch/internal/writers"
)

// Exit codes shared by all tools.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags or unreadable input
	ExitOutput   = 3 // stdout write failure (other than a closed pipe)
	ExitCanceled = 130
)

// Finish flushes outw and returns code, or ExitOutput if the flush fails.
// A broken pipe counts as success.
func Finish(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return code
}
