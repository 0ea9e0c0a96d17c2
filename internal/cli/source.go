package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/ordercheck/pkg/adapters/file"
	"github.com/aretw0/ordercheck/pkg/adapters/stdin"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/aretw0/ordercheck/pkg/ports"
)

// ResolveSource picks the input: the file at path if it opens, otherwise
// standard input when pipe is set, otherwise domain.ErrNoInput.
// A path that fails to open is not an error on its own.
func ResolveSource(path string, pipe bool, in io.Reader, logger *slog.Logger) (ports.LineSource, error) {
	if path != "" {
		src, err := file.Open(path)
		if err == nil {
			return src, nil
		}
		logger.Debug("path input unavailable", "path", path, "error", err)
	}
	if pipe {
		return stdin.New(in), nil
	}
	return nil, domain.ErrNoInput
}
