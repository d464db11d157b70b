// internal/engine/engine.go
package engine

import (
	"strmatch-core/sequence"
	"strmatch-core/str"
)

// Config controls the typing policy.
type Config struct {
	// Unique reports str.NoMatch when more than one candidate fully matches.
	Unique bool
}

// Engine holds a candidate pool and its fragment columns for a single run.
type Engine struct {
	cfg   Config
	pool  str.Pool
	frags []str.Fragment
}

func New(pool str.Pool, c Config) *Engine {
	return &Engine{cfg: c, pool: pool, frags: str.Fragments(pool)}
}

// Fragments returns the pool's fragment columns in first-seen order.
func (e *Engine) Fragments() []str.Fragment { return e.frags }

// Identify counts every fragment in s and applies first-match-wins.
func (e *Engine) Identify(s sequence.Sample) Result {
	counts := str.Counts(e.pool, s.Seq)
	r := Result{
		SampleID:   s.ID,
		SourceFile: s.Source,
		Length:     len(s.Seq),
		Match:      str.NoMatch,
		Candidates: str.MatchAllCounts(e.pool, counts),
		Counts:     make([]Count, 0, len(e.frags)),
	}
	for _, f := range e.frags {
		r.Counts = append(r.Counts, Count{SampleID: s.ID, SourceFile: s.Source, Fragment: f, Repeats: counts[f]})
	}
	r.Ambiguous = len(r.Candidates) > 1
	switch {
	case len(r.Candidates) == 0:
	case r.Ambiguous && e.cfg.Unique:
	default:
		r.Match = r.Candidates[0]
	}
	return r
}

// CountFragments returns the longest repeat of each fragment in s, in order.
func CountFragments(frags []str.Fragment, s sequence.Sample) []Count {
	out := make([]Count, 0, len(frags))
	for _, f := range frags {
		out = append(out, Count{SampleID: s.ID, SourceFile: s.Source, Fragment: f, Repeats: str.LongestRepeat(f, s.Seq)})
	}
	return out
}
