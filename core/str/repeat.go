// core/str/repeat.go
package str

// FragmentWidth is the width of every STR repeat unit.
const FragmentWidth = 4

// Fragment is a fixed-width repeat unit, compared byte-for-byte (case-sensitive).
type Fragment string

// ValidFragment reports whether f has the required width.
func ValidFragment(f string) bool { return len(f) == FragmentWidth }

// LongestRepeat returns the longest run of consecutive, non-overlapping,
// back-to-back copies of frag in seq.
//
// The cursor advances by FragmentWidth after a hit and by one byte after a
// miss, so a run may start at any offset. A trailing window shorter than
// FragmentWidth is never compared. The result is always in [0, len(seq)/4].
func LongestRepeat(frag Fragment, seq string) int {
	best, streak := 0, 0
	for i := 0; i <= len(seq)-FragmentWidth; {
		if seq[i:i+FragmentWidth] == string(frag) {
			streak++
			i += FragmentWidth
		} else {
			streak = 0
			i++
		}
		if streak > best {
			best = streak
		}
	}
	return best
}
