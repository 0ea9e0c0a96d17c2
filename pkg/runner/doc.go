/*
Package runner drives the read-classify-print pipeline of ordercheck.

It pulls lines from a ports.LineSource, classifies each one as it arrives and
hands the result to a pluggable OutputHandler. Nothing is buffered beyond the
current line.

# Key Components

  - Results: the lazy sequence of OrderResults over a sequence of lines.
  - Runner: drains a source through a handler and reports a Summary.
  - TextHandler: "<word> <LABEL>" lines, optionally colored.
  - JSONHandler: one JSON object per line (NDJSON).

# Usage

	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
		runner.WithLogger(logger),
	)

	summary, err := r.Run(ctx, src)
*/
package runner
