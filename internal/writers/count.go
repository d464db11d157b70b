// internal/writers/count.go
package writers

import (
	"encoding/json"
	"io"

	"strmatch/internal/engine"
	"strmatch/internal/output"
)

func init() {
	RegisterCount("text", func(w io.Writer, _ Options) Stream[engine.Count] {
		return lineStream(w, "", output.WriteCountText)
	})
	RegisterCount("tsv", func(w io.Writer, opt Options) Stream[engine.Count] {
		header := ""
		if opt.Header {
			header = output.CountTSVHeader
		}
		return lineStream(w, header, output.WriteCountTSV)
	})
	RegisterCount("json", func(w io.Writer, _ Options) Stream[engine.Count] {
		return bufferedStream(w, output.WriteCountJSON)
	})
	RegisterCount("jsonl", func(w io.Writer, _ Options) Stream[engine.Count] {
		enc := json.NewEncoder(w)
		return lineStream(w, "", func(_ io.Writer, c engine.Count) error {
			return enc.Encode(output.ToAPICount(c))
		})
	})
}
