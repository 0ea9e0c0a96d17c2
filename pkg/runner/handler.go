package runner

import (
	"context"

	"github.com/aretw0/ordercheck/pkg/domain"
)

// OutputHandler defines how classified words are presented.
// This allows switching between Text (CLI) and JSON (structured) modes.
type OutputHandler interface {
	Output(ctx context.Context, result domain.OrderResult) error
}

// Observer is notified of every result after it has been written.
type Observer interface {
	Observe(result domain.OrderResult)
}
