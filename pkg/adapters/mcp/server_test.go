package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/aretw0/ordercheck/pkg/observability"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestHandleClassifyWords(t *testing.T) {
	metrics := observability.NewMetrics()
	s := NewServer(metrics, nil)

	res, err := s.handleClassifyWords(context.Background(), callRequest("classify_words", map[string]any{
		"words": "abc\ncba\r\nbac\n\naa",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "abc IN ORDER\ncba REVERSE ORDER\nbac NOT IN ORDER\n IN ORDER\naa IN ORDER", text.Text)

	count, err := testutil.GatherAndCount(metrics.Registry(), "ordercheck_words_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestHandleClassifyWords_BadArguments(t *testing.T) {
	s := NewServer(nil, nil)

	res, err := s.handleClassifyWords(context.Background(), callRequest("classify_words", map[string]any{
		"words": []int{1, 2},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleClassifyWord(t *testing.T) {
	s := NewServer(nil, nil)

	got, err := s.handleClassifyWord(context.Background(), callRequest("classify_word", nil), map[string]interface{}{
		"word": "cba",
	})
	require.NoError(t, err)
	assert.Equal(t, "cba", got.Word)
	assert.Equal(t, domain.Descending, got.State)
	assert.Equal(t, "REVERSE ORDER", got.Label)
}
