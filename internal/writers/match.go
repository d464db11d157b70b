// internal/writers/match.go
package writers

import (
	"encoding/json"
	"io"

	"strmatch/internal/engine"
	"strmatch/internal/output"
	"strmatch/internal/pretty"
)

func init() {
	RegisterMatch("text", func(w io.Writer, _ Options) Stream[engine.Result] {
		return lineStream(w, "", output.WriteMatchText)
	})
	RegisterMatch("tsv", func(w io.Writer, opt Options) Stream[engine.Result] {
		header := ""
		if opt.Header {
			header = output.MatchTSVHeader(opt.Fragments)
		}
		return lineStream(w, header, output.WriteMatchTSV)
	})
	RegisterMatch("json", func(w io.Writer, _ Options) Stream[engine.Result] {
		return bufferedStream(w, output.WriteMatchJSON)
	})
	RegisterMatch("jsonl", func(w io.Writer, _ Options) Stream[engine.Result] {
		enc := json.NewEncoder(w)
		return lineStream(w, "", func(_ io.Writer, r engine.Result) error {
			return enc.Encode(output.ToAPIMatch(r))
		})
	})
	RegisterMatch("pretty", func(w io.Writer, opt Options) Stream[engine.Result] {
		want := make(map[string]map[string]int, len(opt.Pool))
		for _, p := range opt.Pool {
			if _, dup := want[p.Name]; dup {
				continue
			}
			m := make(map[string]int, len(p.STRs))
			for _, s := range p.STRs {
				m[string(s.Fragment)] = s.Count
			}
			want[p.Name] = m
		}
		return lineStream(w, "", func(w io.Writer, r engine.Result) error {
			_, err := io.WriteString(w, pretty.RenderResultWithOptions(r, want[r.Match], pretty.DefaultOptions))
			return err
		})
	})
}
