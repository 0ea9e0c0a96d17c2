package runner

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/aretw0/ordercheck/pkg/adapters/stdin"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Scenarios(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRunner(WithHandler(NewTextHandler(out)))

	summary, err := r.Run(context.Background(), stdin.New(strings.NewReader("abc\ncba\nbac\n\naa\n")))
	require.NoError(t, err)

	want := "abc IN ORDER\n" +
		"cba REVERSE ORDER\n" +
		"bac NOT IN ORDER\n" +
		" IN ORDER\n" +
		"aa IN ORDER\n"
	assert.Equal(t, want, out.String())

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Counts[domain.Ascending])
	assert.Equal(t, 1, summary.Counts[domain.Descending])
	assert.Equal(t, 1, summary.Counts[domain.Unordered])
}

func TestResults_IsLazy(t *testing.T) {
	pulled := 0
	lines := func(yield func(string) bool) {
		for _, w := range []string{"abc", "cba", "bac"} {
			pulled++
			if !yield(w) {
				return
			}
		}
	}

	var got []domain.OrderResult
	for res := range Results(iter.Seq[string](lines)) {
		got = append(got, res)
		if len(got) == 2 {
			break
		}
	}

	want := []domain.OrderResult{
		{Word: "abc", State: domain.Ascending},
		{Word: "cba", State: domain.Descending},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Results mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, pulled)
}

func TestResults_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(Results(slices.Values([]string(nil)))))
}

type recordingObserver struct {
	seen []domain.OrderResult
}

func (o *recordingObserver) Observe(res domain.OrderResult) {
	o.seen = append(o.seen, res)
}

func TestRunner_Observer(t *testing.T) {
	obs := &recordingObserver{}
	r := NewRunner(WithHandler(NewTextHandler(&bytes.Buffer{})), WithObserver(obs))

	_, err := r.Run(context.Background(), stdin.New(strings.NewReader("ab\nba\n")))
	require.NoError(t, err)

	want := []domain.OrderResult{
		{Word: "ab", State: domain.Ascending},
		{Word: "ba", State: domain.Descending},
	}
	if diff := cmp.Diff(want, obs.seen); diff != "" {
		t.Errorf("observed results mismatch (-want +got):\n%s", diff)
	}
}

type failingHandler struct{}

func (failingHandler) Output(ctx context.Context, res domain.OrderResult) error {
	return errors.New("broken pipe")
}

func TestRunner_HandlerError(t *testing.T) {
	r := NewRunner(WithHandler(failingHandler{}))

	summary, err := r.Run(context.Background(), stdin.New(strings.NewReader("abc\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Equal(t, 0, summary.Total)
}

func TestRunner_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	r := NewRunner(WithHandler(NewTextHandler(out)))

	_, err := r.Run(ctx, stdin.New(strings.NewReader("abc\n")))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
