package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/muesli/termenv"
)

// TextHandler writes "<word> <LABEL>" lines.
type TextHandler struct {
	Writer  io.Writer
	Profile termenv.Profile
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithColorProfile colors labels using p. termenv.Ascii disables color.
func WithColorProfile(p termenv.Profile) TextHandlerOption {
	return func(h *TextHandler) {
		h.Profile = p
	}
}

// NewTextHandler creates a plain text handler. Color is off unless configured.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:  w,
		Profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var labelColors = map[domain.OrderState]string{
	domain.Ascending:  "2", // green
	domain.Descending: "3", // yellow
	domain.Unordered:  "1", // red
}

func (h *TextHandler) label(st domain.OrderState) string {
	if h.Profile == termenv.Ascii {
		return st.Label()
	}
	return h.Profile.String(st.Label()).Foreground(h.Profile.Color(labelColors[st])).String()
}

func (h *TextHandler) Output(ctx context.Context, result domain.OrderResult) error {
	_, err := fmt.Fprintf(h.Writer, "%s %s\n", result.Word, h.label(result.State))
	return err
}
