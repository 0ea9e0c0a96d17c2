// Package file provides a LineSource backed by a file on disk.
package file

import (
	"bufio"
	"fmt"
	"iter"
	"os"

	"github.com/aretw0/ordercheck/pkg/adapters/lines"
	"github.com/aretw0/ordercheck/pkg/ports"
)

// Source reads lines from an open file.
type Source struct {
	path   string
	f      *os.File
	reader *bufio.Reader
}

var _ ports.LineSource = (*Source)(nil)

// Open opens path for reading.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Source{path: path, f: f, reader: bufio.NewReader(f)}, nil
}

func (s *Source) Lines() iter.Seq[string] {
	return lines.Scan(s.reader)
}

func (s *Source) Name() string {
	return s.path
}

func (s *Source) Close() error {
	return s.f.Close()
}
