package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ordercheck/internal/config"
	"github.com/aretw0/ordercheck/internal/logging"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/aretw0/ordercheck/pkg/runner"
)

// ClassifyOptions configures a classification run.
type ClassifyOptions struct {
	Path    string
	Pipe    bool
	Format  string
	Color   string
	Summary bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// RunClassify resolves the input source and prints one result per line.
// When no input is available it prints domain.NoInputMessage to Stdout and
// returns domain.ErrNoInput.
func RunClassify(ctx context.Context, opts ClassifyOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	src, err := ResolveSource(opts.Path, opts.Pipe, opts.Stdin, logger)
	if err != nil {
		if errors.Is(err, domain.ErrNoInput) {
			fmt.Fprintln(opts.Stdout, domain.NoInputMessage)
		}
		return err
	}
	defer src.Close()

	handler, err := newOutputHandler(opts)
	if err != nil {
		return err
	}

	r := runner.NewRunner(
		runner.WithHandler(handler),
		runner.WithLogger(logger),
	)

	summary, err := r.Run(ctx, src)
	if opts.Summary && opts.Stderr != nil {
		logging.NewWithWriter(opts.Stderr, slog.LevelInfo).Info("summary", "source", src.Name(), "counts", summary)
	}
	return err
}

func newOutputHandler(opts ClassifyOptions) (runner.OutputHandler, error) {
	switch opts.Format {
	case "", config.FormatText:
		return runner.NewTextHandler(opts.Stdout, runner.WithColorProfile(colorProfile(opts.Color, opts.Stdout))), nil
	case config.FormatJSON:
		return runner.NewJSONHandler(opts.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}
