/*
Package ports defines the driven ports (interfaces) of ordercheck.

These interfaces decouple the runner from where words come from, so a file
and standard input are consumed the same way.

# Key Interfaces

  - LineSource: a single-pass, lazily read sequence of input lines.
*/
package ports
