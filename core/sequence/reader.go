// core/sequence/reader.go
package sequence

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"strmatch-core/input"
)

// Sample is one named sequence taken from an input file.
type Sample struct {
	ID     string
	Source string
	Seq    string
}

// ReadPathCtx opens path and emits its samples in file order.
//
// A file whose first non-blank line starts with '>' is FASTA and yields one
// sample per record (ID = first header token). Anything else is a raw
// sequence: all lines are joined without whitespace into a single sample named
// after the file.
//
// emit may return an error (e.g., ctx.Err()) to stop early.
func ReadPathCtx(ctx context.Context, path string, emit func(Sample) error) error {
	rc, err := input.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ReadCtx(ctx, rc, path, emit)
}

// ReadCtx is ReadPathCtx over an open reader; source names the input.
func ReadCtx(ctx context.Context, r io.Reader, source string, emit func(Sample) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // single-line sequences can be long (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		fasta   bool
		started bool
		seq     = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		s := Sample{ID: id, Source: source, Seq: string(seq)}
		seq = seq[:0]
		return emit(s)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !started {
			started = true
			fasta = line[0] == '>'
			if !fasta {
				id = input.BaseName(source)
			}
		}
		if fasta && line[0] == '>' {
			if id != "" {
				if err := flush(); err != nil {
					return err
				}
			}
			id = headerID(line[1:])
			if id == "" {
				return fmt.Errorf("%s: FASTA record without an ID", source)
			}
			continue
		}
		seq = appendBases(seq, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: scan: %w", source, err)
	}
	if !started {
		// An empty raw file is still one (empty) sample.
		id = input.BaseName(source)
	}
	return flush()
}

// ReadAll collects every sample of path.
func ReadAll(ctx context.Context, path string) ([]Sample, error) {
	var out []Sample
	err := ReadPathCtx(ctx, path, func(s Sample) error {
		out = append(out, s)
		return nil
	})
	return out, err
}

// Length returns the total number of sequence characters in path.
func Length(path string) (int, error) {
	n := 0
	err := ReadPathCtx(context.Background(), path, func(s Sample) error {
		n += len(s.Seq)
		return nil
	})
	return n, err
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// appendBases appends line to dst, dropping interior whitespace.
func appendBases(dst, line []byte) []byte {
	for _, c := range line {
		switch c {
		case ' ', '\t', '\r':
			continue
		}
		dst = append(dst, c)
	}
	return dst
}
