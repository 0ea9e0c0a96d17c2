package runner

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/aretw0/ordercheck/pkg/classifier"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/aretw0/ordercheck/pkg/ports"
)

// Runner drains a LineSource through an OutputHandler.
type Runner struct {
	// Handler presents each result. Defaults to a TextHandler on stdout.
	Handler OutputHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Observer, if set, sees every result that was written.
	Observer Observer
}

// Summary counts the results of a run.
type Summary struct {
	Total  int
	Counts map[domain.OrderState]int
}

func (s *Summary) add(res domain.OrderResult) {
	if s.Counts == nil {
		s.Counts = make(map[domain.OrderState]int, 3)
	}
	s.Total++
	s.Counts[res.State]++
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("total", s.Total)}
	for _, st := range domain.AllOrderStates() {
		attrs = append(attrs, slog.Int(st.String(), s.Counts[st]))
	}
	return slog.GroupValue(attrs...)
}

// NewRunner creates a Runner writing text to stdout unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Results classifies lines on demand, one OrderResult per line.
func Results(lines iter.Seq[string]) iter.Seq[domain.OrderResult] {
	return func(yield func(domain.OrderResult) bool) {
		for line := range lines {
			if !yield(classifier.Result(line)) {
				return
			}
		}
	}
}

// Run classifies every line of src until it is exhausted or ctx is done.
// The summary covers the results written before any error.
func (r *Runner) Run(ctx context.Context, src ports.LineSource) (Summary, error) {
	var summary Summary
	r.Logger.Debug("run started", "source", src.Name())

	for res := range Results(src.Lines()) {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := r.Handler.Output(ctx, res); err != nil {
			return summary, fmt.Errorf("write result for %q: %w", res.Word, err)
		}
		summary.add(res)
		if r.Observer != nil {
			r.Observer.Observe(res)
		}
	}

	r.Logger.Debug("run finished", "source", src.Name(), "summary", summary)
	return summary, nil
}
