// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"strmatch/internal/engine"
	"strmatch/pkg/api"
)

// ToAPIMatch converts a Result to the stable wire schema (v1).
func ToAPIMatch(r engine.Result) api.MatchV1 {
	v := api.MatchV1{
		SampleID:   r.SampleID,
		SourceFile: r.SourceFile,
		Length:     r.Length,
		Match:      r.Match,
		Matched:    r.Matched(),
		Candidates: append([]string(nil), r.Candidates...),
		Ambiguous:  r.Ambiguous,
		Counts:     make([]api.STRCount, 0, len(r.Counts)),
	}
	for _, c := range r.Counts {
		v.Counts = append(v.Counts, api.STRCount{Fragment: string(c.Fragment), Count: c.Repeats})
	}
	return v
}

// ToAPICount converts a Count to the stable wire schema (v1).
func ToAPICount(c engine.Count) api.CountV1 {
	return api.CountV1{
		SampleID:   c.SampleID,
		SourceFile: c.SourceFile,
		Fragment:   string(c.Fragment),
		Count:      c.Repeats,
	}
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteMatchJSON writes a single JSON array of v1 matches (pretty-indented).
func WriteMatchJSON(w io.Writer, list []engine.Result) error {
	out := make([]api.MatchV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIMatch(r))
	}
	return EncodePretty(w, out)
}

// WriteCountJSON writes a single JSON array of v1 counts (pretty-indented).
func WriteCountJSON(w io.Writer, list []engine.Count) error {
	out := make([]api.CountV1, 0, len(list))
	for _, c := range list {
		out = append(out, ToAPICount(c))
	}
	return EncodePretty(w, out)
}
