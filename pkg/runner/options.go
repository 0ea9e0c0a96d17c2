package runner

import "log/slog"

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures the output strategy.
func WithHandler(handler OutputHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithObserver registers an observer (e.g. metrics) for every result.
func WithObserver(obs Observer) Option {
	return func(r *Runner) {
		r.Observer = obs
	}
}
