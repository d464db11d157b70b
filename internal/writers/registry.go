// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"strmatch-core/str"
	"strmatch/internal/engine"
)

// Options carries presentation settings shared by all formats.
type Options struct {
	Header    bool
	Fragments []str.Fragment // column order for match TSV
	Pool      str.Pool       // candidate profiles, for formats that show expected counts
}

// Stream receives items one at a time; Close flushes anything buffered
// (e.g. a JSON array) and must be called exactly once.
type Stream[T any] struct {
	Send  func(T) error
	Close func() error
}

// Factory builds a Stream writing to w.
type Factory[T any] func(w io.Writer, opt Options) Stream[T]

// Format registries (format → factory), filled from init() in match.go / count.go.
var (
	matchWriters = map[string]Factory[engine.Result]{}
	countWriters = map[string]Factory[engine.Count]{}
)

// RegisterMatch adds or replaces (last wins) a match format.
func RegisterMatch(format string, fn Factory[engine.Result]) { matchWriters[format] = fn }

// RegisterCount adds or replaces (last wins) a count format.
func RegisterCount(format string, fn Factory[engine.Count]) { countWriters[format] = fn }

// NewMatchStream returns the match writer registered for format.
func NewMatchStream(format string, w io.Writer, opt Options) (Stream[engine.Result], error) {
	fn, ok := matchWriters[format]
	if !ok {
		return Stream[engine.Result]{}, fmt.Errorf("unknown match format %q (no writer registered)", format)
	}
	return fn(w, opt), nil
}

// NewCountStream returns the count writer registered for format.
func NewCountStream(format string, w io.Writer, opt Options) (Stream[engine.Count], error) {
	fn, ok := countWriters[format]
	if !ok {
		return Stream[engine.Count]{}, fmt.Errorf("unknown count format %q (no writer registered)", format)
	}
	return fn(w, opt), nil
}

// Formats lists the registered match formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(matchWriters))
	for k := range matchWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// lineStream writes one item per call, with an optional header written first.
func lineStream[T any](w io.Writer, header string, write func(io.Writer, T) error) Stream[T] {
	pending := header != ""
	emitHeader := func() error {
		if !pending {
			return nil
		}
		pending = false
		_, err := fmt.Fprintln(w, header)
		return err
	}
	return Stream[T]{
		Send: func(v T) error {
			if err := emitHeader(); err != nil {
				return err
			}
			return write(w, v)
		},
		Close: emitHeader,
	}
}

// bufferedStream collects every item and writes them together on Close.
func bufferedStream[T any](w io.Writer, write func(io.Writer, []T) error) Stream[T] {
	var buf []T
	return Stream[T]{
		Send:  func(v T) error { buf = append(buf, v); return nil },
		Close: func() error { return write(w, buf) },
	}
}
