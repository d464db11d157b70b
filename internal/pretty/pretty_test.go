package pretty

import (
	"strings"
	"testing"

	"strmatch/internal/engine"
)

func sample() engine.Result {
	return engine.Result{
		SampleID: "1", SourceFile: "1.txt", Length: 120, Match: "Alice",
		Counts: []engine.Count{
			{SampleID: "1", Fragment: "AGAT", Repeats: 5},
			{SampleID: "1", Fragment: "AATG", Repeats: 2},
			{SampleID: "1", Fragment: "TATC", Repeats: 8},
		},
	}
}

func TestRenderResult(t *testing.T) {
	got := RenderResult(sample())
	want := "# 1 (1.txt, 120 bp) → Alice\n" +
		"#   AGAT      5 |||||\n" +
		"#   AATG      2 ||\n" +
		"#   TATC      8 ||||||||\n" +
		"# counts: 5,2,8\n\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderResult_DiffAndScale(t *testing.T) {
	r := sample()
	r.Match = "No match"
	got := RenderResultWithOptions(r, map[string]int{"AGAT": 5, "AATG": 3}, Options{MaxBar: 4, ShowDiff: true})
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[2], "# * AATG") {
		t.Fatalf("expected diff mark on AATG, got %q", lines[2])
	}
	if strings.HasPrefix(lines[1], "# *") {
		t.Fatalf("AGAT agrees and must not be marked: %q", lines[1])
	}
	// 8 is the longest run, scaled to 4 glyphs; 2 scales to 1.
	if !strings.HasSuffix(lines[3], " ||||") || !strings.HasSuffix(lines[2], " |") {
		t.Fatalf("scaling wrong:\n%s", got)
	}
}

func TestRenderResult_Ambiguous(t *testing.T) {
	r := sample()
	r.Ambiguous = true
	r.Candidates = []string{"Alice", "Alicia"}
	got := RenderResult(r)
	if !strings.Contains(got, "# candidates: Alice, Alicia\n") {
		t.Fatalf("missing candidates line:\n%s", got)
	}
}

func TestRenderResult_NoFragments(t *testing.T) {
	got := RenderResult(engine.Result{SampleID: "x", Match: "No match"})
	if !strings.Contains(got, "(no fragments)") || !strings.Contains(got, "(-, 0 bp)") {
		t.Fatalf("got %q", got)
	}
}
