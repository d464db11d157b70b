// core/str/match.go
package str

// NoMatch is reported when no candidate agrees with every count.
const NoMatch = "No match"

// STR is one expected (fragment, repeat count) pair of a profile.
type STR struct {
	Fragment Fragment
	Count    int
}

// Profile is a candidate's recorded STR counts, in table column order.
type Profile struct {
	Name string
	STRs []STR
}

// Pool is the ordered list of candidates; order decides ties.
type Pool []Profile

// Fragments returns the distinct fragments named in pool, in first-seen order.
func Fragments(pool Pool) []Fragment {
	seen := make(map[Fragment]bool)
	var out []Fragment
	for _, p := range pool {
		for _, s := range p.STRs {
			if seen[s.Fragment] {
				continue
			}
			seen[s.Fragment] = true
			out = append(out, s.Fragment)
		}
	}
	return out
}

// Counts computes LongestRepeat once for every distinct fragment in pool.
func Counts(pool Pool, seq string) map[Fragment]int {
	frags := Fragments(pool)
	out := make(map[Fragment]int, len(frags))
	for _, f := range frags {
		out[f] = LongestRepeat(f, seq)
	}
	return out
}

// Matches reports whether every STR of p equals the computed count.
// A fragment absent from counts is counted as zero repeats.
func Matches(p Profile, counts map[Fragment]int) bool {
	agree := 0
	for _, s := range p.STRs {
		if counts[s.Fragment] == s.Count {
			agree++
		}
	}
	return agree == len(p.STRs)
}

// Match returns the name of the first profile in pool whose every STR count
// equals the longest repeat count found in seq, or NoMatch.
func Match(pool Pool, seq string) string {
	if len(pool) == 0 {
		return NoMatch
	}
	counts := Counts(pool, seq)
	for _, p := range pool {
		if Matches(p, counts) {
			return p.Name
		}
	}
	return NoMatch
}

// MatchAll returns every fully matching profile name, in pool order.
func MatchAll(pool Pool, seq string) []string {
	return MatchAllCounts(pool, Counts(pool, seq))
}

// MatchAllCounts is MatchAll over precomputed counts.
func MatchAllCounts(pool Pool, counts map[Fragment]int) []string {
	var names []string
	for _, p := range pool {
		if Matches(p, counts) {
			names = append(names, p.Name)
		}
	}
	return names
}
