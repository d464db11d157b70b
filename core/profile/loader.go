// core/profile/loader.go
package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"strmatch-core/input"
	"strmatch-core/str"
)

var (
	ErrNoHeader    = errors.New("missing header row")
	ErrNoFragments = errors.New("header names no STR fragments")
)

// Options tunes table parsing. A zero Comma picks the delimiter from the path.
type Options struct {
	Comma rune
}

// DelimiterFor returns '\t' for .tsv/.tab tables (optionally gzipped), ',' otherwise.
func DelimiterFor(path string) rune {
	name := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	switch filepath.Ext(name) {
	case ".tsv", ".tab":
		return '\t'
	}
	return ','
}

// Load reads the profile table at path ("-" for stdin).
func Load(path string, opt Options) (str.Pool, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	if opt.Comma == 0 {
		opt.Comma = DelimiterFor(path)
	}
	return Read(rc, path, opt)
}

// Read parses a header-carrying table: the first column names the candidate,
// every other column is a 4-character fragment with integer repeat counts.
// An empty count cell leaves that fragment out of the candidate's profile.
func Read(r io.Reader, source string, opt Options) (str.Pool, error) {
	if opt.Comma == 0 {
		opt.Comma = ','
	}
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.Comma = opt.Comma
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", source, ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	frags, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%s:1 %w", source, err)
	}

	var pool str.Pool
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		ln, _ := cr.FieldPos(0)
		p, err := parseRow(rec, frags)
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", source, ln, err)
		}
		pool = append(pool, p)
	}
	return pool, nil
}

func parseHeader(header []string) ([]str.Fragment, error) {
	if len(header) < 2 {
		return nil, ErrNoFragments
	}
	seen := make(map[str.Fragment]bool, len(header)-1)
	frags := make([]str.Fragment, 0, len(header)-1)
	for _, h := range header[1:] {
		label := norm.NFC.String(strings.TrimSpace(h))
		if !str.ValidFragment(label) {
			return nil, fmt.Errorf("bad fragment %q: want %d characters", label, str.FragmentWidth)
		}
		f := str.Fragment(label)
		if seen[f] {
			return nil, fmt.Errorf("duplicate fragment %q", label)
		}
		seen[f] = true
		frags = append(frags, f)
	}
	return frags, nil
}

func parseRow(rec []string, frags []str.Fragment) (str.Profile, error) {
	p := str.Profile{Name: norm.NFC.String(strings.TrimSpace(rec[0]))}
	if p.Name == "" {
		return p, errors.New("empty name")
	}
	p.STRs = make([]str.STR, 0, len(frags))
	for i, f := range frags {
		cell := strings.TrimSpace(rec[i+1])
		if cell == "" {
			continue
		}
		n, err := strconv.Atoi(cell)
		if err != nil {
			return p, fmt.Errorf("bad count for %s %s: %q", p.Name, f, cell)
		}
		if n < 0 {
			return p, fmt.Errorf("negative count for %s %s: %d", p.Name, f, n)
		}
		p.STRs = append(p.STRs, str.STR{Fragment: f, Count: n})
	}
	return p, nil
}
