package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/ordercheck/pkg/domain"
)

// JSONResult is the wire form of an OrderResult, shared by the JSON
// handler and the HTTP adapter.
type JSONResult struct {
	Word  string            `json:"word"`
	State domain.OrderState `json:"state"`
	Label string            `json:"label"`
}

// NewJSONResult converts a domain result to its wire form.
func NewJSONResult(res domain.OrderResult) JSONResult {
	return JSONResult{Word: res.Word, State: res.State, Label: res.State.Label()}
}

// JSONHandler emits one JSON object per result (JSON Lines).
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONHandler{
		Writer:  w,
		Encoder: enc,
	}
}

func (h *JSONHandler) Output(ctx context.Context, result domain.OrderResult) error {
	return h.Encoder.Encode(NewJSONResult(result))
}
