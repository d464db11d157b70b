package pretty

import (
	"fmt"
	"strings"

	"strmatch/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Longest bar drawn; longer runs are scaled down. If <=0, use default (40).
	MaxBar int

	// Mark tracks whose count differs from the reported profile.
	ShowDiff bool

	// Glyphs
	RunGlyph  string // default "|"
	DiffGlyph string // default "*"
}

// DefaultOptions is the look used by --output pretty.
var DefaultOptions = Options{
	MaxBar:    40,
	ShowDiff:  true,
	RunGlyph:  "|",
	DiffGlyph: "*",
}

const linePrefix = "# "

// scaleBar maps a repeat count onto at most width glyphs (endpoint-preserving).
func scaleBar(n, longest, width int) int {
	if n <= 0 || longest <= 0 {
		return 0
	}
	if longest <= width {
		return n
	}
	w := (n * width) / longest
	if w == 0 {
		w = 1
	}
	return w
}

// intsCSV prints counts in the summary line.
func intsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(ss, ",")
}

// RenderResultWithOptions prints one sample block: a summary line followed by
// one repeat track per fragment. want holds the reported profile's counts
// (fragment → count) and may be nil.
func RenderResultWithOptions(r engine.Result, want map[string]int, opt Options) string {
	width := opt.MaxBar
	if width <= 0 {
		width = DefaultOptions.MaxBar
	}
	glyph := opt.RunGlyph
	if glyph == "" {
		glyph = DefaultOptions.RunGlyph
	}
	diff := opt.DiffGlyph
	if diff == "" {
		diff = DefaultOptions.DiffGlyph
	}

	var b strings.Builder
	src := r.SourceFile
	if src == "" {
		src = "-"
	}
	fmt.Fprintf(&b, "%s%s (%s, %d bp) → %s\n", linePrefix, r.SampleID, src, r.Length, r.Match)
	if r.Ambiguous {
		fmt.Fprintf(&b, "%scandidates: %s\n", linePrefix, strings.Join(r.Candidates, ", "))
	}
	if len(r.Counts) == 0 {
		fmt.Fprintf(&b, "%s(no fragments)\n\n", linePrefix)
		return b.String()
	}

	longest, counts := 0, make([]int, len(r.Counts))
	for i, c := range r.Counts {
		counts[i] = c.Repeats
		if c.Repeats > longest {
			longest = c.Repeats
		}
	}
	for _, c := range r.Counts {
		mark := " "
		if opt.ShowDiff && want != nil {
			if exp, ok := want[string(c.Fragment)]; ok && exp != c.Repeats {
				mark = diff
			}
		}
		fmt.Fprintf(&b, "%s%s %-6s %4d %s\n", linePrefix, mark, c.Fragment, c.Repeats,
			strings.Repeat(glyph, scaleBar(c.Repeats, longest, width)))
	}
	fmt.Fprintf(&b, "%scounts: %s\n\n", linePrefix, intsCSV(counts))
	return b.String()
}

// RenderResult renders with DefaultOptions and no expected profile.
func RenderResult(r engine.Result) string {
	return RenderResultWithOptions(r, nil, DefaultOptions)
}
