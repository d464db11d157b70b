package output

import (
	"strings"

	"strmatch-core/str"
)

// MatchTSVPrefix holds the fixed leading columns of match TSV output;
// one column per fragment follows.
const MatchTSVPrefix = "sample_id\tsource_file\tlength\tmatch"

// CountTSVHeader is the header row for strcount TSV output.
const CountTSVHeader = "sample_id\tsource_file\tfragment\tcount"

// MatchTSVHeader returns the match header row for the given fragment columns.
func MatchTSVHeader(frags []str.Fragment) string {
	var b strings.Builder
	b.WriteString(MatchTSVPrefix)
	for _, f := range frags {
		b.WriteByte('\t')
		b.WriteString(string(f))
	}
	return b.String()
}
