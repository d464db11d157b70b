// pkg/api/match_v1.go
package api

// MatchV1 is the stable JSON/JSONL schema for one typed sample.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	SampleID   string     `json:"sample_id"`
	SourceFile string     `json:"source_file,omitempty"`
	Length     int        `json:"length"`
	Match      string     `json:"match"` // candidate name or "No match"
	Matched    bool       `json:"matched"`
	Candidates []string   `json:"candidates,omitempty"`
	Ambiguous  bool       `json:"ambiguous,omitempty"`
	Counts     []STRCount `json:"counts"`
}

// STRCount is one fragment's longest repeat inside MatchV1.
type STRCount struct {
	Fragment string `json:"fragment"`
	Count    int    `json:"count"`
}

// CountV1 is the stable schema for strcount output.
type CountV1 struct {
	SampleID   string `json:"sample_id"`
	SourceFile string `json:"source_file,omitempty"`
	Fragment   string `json:"fragment"`
	Count      int    `json:"count"`
}
