// Package lines turns a buffered reader into a lazy sequence of text lines.
package lines

import (
	"bufio"
	"iter"
	"strings"
	"unicode/utf8"
)

// Scan yields every line of r with its "\n" or "\r\n" terminator removed.
//
// Lines that are not valid UTF-8 are skipped. A read error other than EOF
// ends the sequence. Neither case is reported to the consumer.
func Scan(r *bufio.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			text, err := r.ReadString('\n')

			// A final line without terminator comes back together with io.EOF.
			if text != "" {
				line := trimTerminator(text)
				if utf8.ValidString(line) {
					if !yield(line) {
						return
					}
				}
			}

			if err != nil {
				return
			}
		}
	}
}

// trimTerminator removes "\n" and a "\r" directly before it. A "\r" that
// ends an unterminated last line is part of the word.
func trimTerminator(s string) string {
	line, ok := strings.CutSuffix(s, "\n")
	if !ok {
		return s
	}
	return strings.TrimSuffix(line, "\r")
}
