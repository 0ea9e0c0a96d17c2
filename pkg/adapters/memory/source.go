// Package memory provides an in-memory LineSource, for tests and library callers
// that already hold their words.
package memory

import (
	"iter"

	"github.com/aretw0/ordercheck/pkg/ports"
)

// Source yields a fixed list of lines once.
type Source struct {
	name  string
	lines []string
	next  int
}

var _ ports.LineSource = (*Source)(nil)

// NewSource returns a Source named name over lines. The slice is not copied.
func NewSource(name string, lines ...string) *Source {
	return &Source{name: name, lines: lines}
}

func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.next < len(s.lines) {
			line := s.lines[s.next]
			s.next++
			if !yield(line) {
				return
			}
		}
	}
}

func (s *Source) Name() string {
	return s.name
}

// Close is a no-op.
func (s *Source) Close() error {
	return nil
}
