// Package catalog holds the launchable entries for a session. A catalog is
// built once, before the interactive loop starts, and never changes after.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCandidate = errors.New("invalid candidate")
	ErrDuplicateCommand = errors.New("duplicate launch command")
)

// IconKind distinguishes the two icon formats the presentation layer knows.
type IconKind int

const (
	IconVector IconKind = iota
	IconRaster
)

func (k IconKind) String() string {
	switch k {
	case IconVector:
		return "vector"
	case IconRaster:
		return "raster"
	default:
		return fmt.Sprintf("IconKind(%d)", int(k))
	}
}

// IconRef points at an icon file. The core never interprets it.
type IconRef struct {
	kind IconKind
	path string
}

func VectorPath(path string) IconRef {
	return IconRef{kind: IconVector, path: path}
}

func RasterPath(path string) IconRef {
	return IconRef{kind: IconRaster, path: path}
}

func (r IconRef) Kind() IconKind { return r.kind }

func (r IconRef) Path() string { return r.path }

func (r IconRef) String() string {
	return r.kind.String() + ":" + r.path
}

// Candidate is one launchable entry. Command is the identity key.
type Candidate struct {
	Name    string
	Command string
	Icon    IconRef
}

// Catalog is an ordered, read-only list of candidates unique by command.
type Catalog struct {
	entries []Candidate
}

// New validates entries and builds a catalog preserving their order.
func New(entries []Candidate) (*Catalog, error) {
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidCandidate, i)
		}
		if strings.TrimSpace(entry.Command) == "" {
			return nil, fmt.Errorf("%w: %q has no launch command", ErrInvalidCandidate, entry.Name)
		}
		if prev, ok := seen[entry.Command]; ok {
			return nil, fmt.Errorf("%w: %q used by entries %d and %d", ErrDuplicateCommand, entry.Command, prev, i)
		}
		seen[entry.Command] = i
	}
	return &Catalog{entries: cloneCandidates(entries)}, nil
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{}
}

// Len returns the number of candidates. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the candidate at index i in catalog order.
func (c *Catalog) At(i int) Candidate {
	return c.entries[i]
}

// Entries returns a copy of the candidates in catalog order.
func (c *Catalog) Entries() []Candidate {
	if c == nil {
		return nil
	}
	return cloneCandidates(c.entries)
}

// Dedup keeps the first candidate for each launch command.
func Dedup(entries []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.Command]; ok {
			continue
		}
		seen[entry.Command] = struct{}{}
		out = append(out, entry)
	}
	return out
}

func cloneCandidates(entries []Candidate) []Candidate {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Candidate, len(entries))
	copy(dup, entries)
	return dup
}
