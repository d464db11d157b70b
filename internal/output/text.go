// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"strmatch/internal/engine"
)

// WriteMatchText prints the matched name (or "No match"), one line per sample.
func WriteMatchText(w io.Writer, r engine.Result) error {
	_, err := fmt.Fprintln(w, r.Match)
	return err
}

// FormatMatchRowTSV returns one TSV row (no trailing newline) with the counts
// in column order.
func FormatMatchRowTSV(r engine.Result) string {
	cols := make([]string, 0, 4+len(r.Counts))
	cols = append(cols, r.SampleID, r.SourceFile, strconv.Itoa(r.Length), r.Match)
	for _, c := range r.Counts {
		cols = append(cols, strconv.Itoa(c.Repeats))
	}
	return strings.Join(cols, "\t")
}

// WriteMatchTSV writes one row.
func WriteMatchTSV(w io.Writer, r engine.Result) error {
	_, err := fmt.Fprintln(w, FormatMatchRowTSV(r))
	return err
}

// WriteCountText prints "sample_id<TAB>fragment<TAB>count".
func WriteCountText(w io.Writer, c engine.Count) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\n", c.SampleID, c.Fragment, c.Repeats)
	return err
}

// WriteCountTSV prints one row under CountTSVHeader.
func WriteCountTSV(w io.Writer, c engine.Count) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.SampleID, c.SourceFile, c.Fragment, c.Repeats)
	return err
}
