package ports

import "iter"

// LineSource is a readable sequence of lines.
type LineSource interface {
	// Lines returns the lines of the source with their terminators stripped.
	// The sequence is single-pass: once consumed it yields nothing more.
	Lines() iter.Seq[string]

	// Name identifies the source in logs (a path, or "stdin").
	Name() string

	// Close releases the underlying resource, if the source owns one.
	Close() error
}
