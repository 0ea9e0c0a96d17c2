package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(out)

	require.NoError(t, h.Output(context.Background(), domain.OrderResult{Word: "cba", State: domain.Descending}))
	require.NoError(t, h.Output(context.Background(), domain.OrderResult{Word: "<a>", State: domain.Unordered}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"word":"cba","state":"descending","label":"REVERSE ORDER"}`, lines[0])
	assert.JSONEq(t, `{"word":"<a>","state":"unordered","label":"NOT IN ORDER"}`, lines[1])
	assert.Contains(t, lines[1], `"<a>"`)
}
