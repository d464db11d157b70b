package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.RunGlyph == "" || d.DiffGlyph == "" {
		t.Fatalf("glyphs must be non-empty")
	}
	// Spot checks of current defaults (don’t lock everything, just the external look)
	if d.RunGlyph != "|" || d.DiffGlyph != "*" || d.MaxBar != 40 || !d.ShowDiff {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
