// internal/engine/result.go
package engine

import "strmatch-core/str"

// Result is the typing outcome for one sample.
type Result struct {
	SampleID   string
	SourceFile string
	Length     int

	// Match is the reported candidate name or str.NoMatch.
	Match string
	// Candidates lists every fully matching profile, in pool order.
	Candidates []string
	// Ambiguous is set when more than one candidate fully matched.
	Ambiguous bool

	// Counts holds the longest repeat of each pool fragment, in column order.
	Counts []Count
}

// Count is the longest repeat of one fragment in one sample.
type Count struct {
	SampleID   string
	SourceFile string
	Fragment   str.Fragment
	Repeats    int
}

// Matched reports whether the result names a candidate.
func (r Result) Matched() bool { return r.Match != str.NoMatch }
