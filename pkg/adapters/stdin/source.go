// Package stdin provides a LineSource over the process standard input.
package stdin

import (
	"bufio"
	"io"
	"iter"
	"os"
	"sync"

	"github.com/aretw0/ordercheck/pkg/adapters/lines"
	"github.com/aretw0/ordercheck/pkg/ports"
)

// Source reads lines from standard input.
//
// The buffered reader is built on first use and never closed; the stream
// belongs to the process.
type Source struct {
	stream io.Reader

	once   sync.Once
	reader *bufio.Reader
}

var _ ports.LineSource = (*Source)(nil)

// New returns a Source over r, or over os.Stdin when r is nil.
func New(r io.Reader) *Source {
	if r == nil {
		r = os.Stdin
	}
	return &Source{stream: r}
}

func (s *Source) handle() *bufio.Reader {
	s.once.Do(func() {
		s.reader = bufio.NewReader(s.stream)
	})
	return s.reader
}

func (s *Source) Lines() iter.Seq[string] {
	return lines.Scan(s.handle())
}

func (s *Source) Name() string {
	return "stdin"
}

// Close is a no-op.
func (s *Source) Close() error {
	return nil
}
