package str

import (
	"math/rand"
	"strings"
	"testing"
)

const docSeq = "AGACGGGTTACCATGACTATCTATCTATCTATCTATCTATCTATCTATCACGTACGTACGTATCGAGATAGATAGATAGATAGATCCTCGACTTCGATCGCAATGAATGCCAATAGACAAAA"

func TestLongestRepeat(t *testing.T) {
	cases := []struct {
		name string
		frag Fragment
		seq  string
		want int
	}{
		{"empty", "AGAT", "", 0},
		{"shorter than fragment", "AGAT", "AGA", 0},
		{"absent", "AGAT", "CCCCGGGGTTTT", 0},
		{"single", "AGAT", "CCAGATCC", 1},
		{"exact fit", "AGAT", "AGAT", 1},
		{"back to back", "AGAT", "AGATAGATAGAT", 3},
		{"no overlap credit", "AGAT", "AGATAGA", 1},
		{"noise resets streak", "AGAT", "AGATAGATXXAGATAGATAGAT", 3},
		{"longer run first", "AGAT", "AGATAGATAGATCAGAT", 3},
		{"unaligned start", "AGAT", "CAGATAGAT", 2},
		{"trailing partial ignored", "AGAT", "AGATAGATAGA", 2},
		{"case sensitive", "AGAT", "agatagat", 0},
		{"overlapping self-similar", "AAAA", "AAAAAAA", 1},
		{"self-similar run", "AAAA", "AAAAAAAA", 2},
		{"docstring AGAT", "AGAT", docSeq, 5},
		{"docstring TATC", "TATC", docSeq, 8},
		{"docstring AATG", "AATG", docSeq, 2},
		{"wrong width never matches", "AGA", "AGAAGAAGA", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LongestRepeat(tc.frag, tc.seq); got != tc.want {
				t.Fatalf("LongestRepeat(%q, %q) = %d, want %d", tc.frag, tc.seq, got, tc.want)
			}
		})
	}
}

// Streak is reported even when the sequence ends mid-run.
func TestLongestRepeatEndsMidStreak(t *testing.T) {
	seq := "CCAGAT" + strings.Repeat("TATC", 6)
	if got := LongestRepeat("TATC", seq); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestLongestRepeatBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const alphabet = "ACGT"
	frags := []Fragment{"AGAT", "AATG", "TATC", "AAAA"}
	for n := 0; n < 500; n++ {
		var b strings.Builder
		ln := rng.Intn(80)
		for i := 0; i < ln; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		seq := b.String()
		for _, f := range frags {
			got := LongestRepeat(f, seq)
			if got < 0 || got > len(seq)/FragmentWidth {
				t.Fatalf("LongestRepeat(%q, %q) = %d out of [0,%d]", f, seq, got, len(seq)/FragmentWidth)
			}
			if !strings.Contains(seq, string(f)) && got != 0 {
				t.Fatalf("LongestRepeat(%q, %q) = %d for absent fragment", f, seq, got)
			}
			if strings.Contains(seq, string(f)) && got == 0 {
				t.Fatalf("LongestRepeat(%q, %q) = 0 for present fragment", f, seq)
			}
		}
	}
}

func TestValidFragment(t *testing.T) {
	if !ValidFragment("AGAT") {
		t.Fatal("AGAT should be valid")
	}
	for _, f := range []string{"", "AGA", "AGATA"} {
		if ValidFragment(f) {
			t.Fatalf("%q should be invalid", f)
		}
	}
}
