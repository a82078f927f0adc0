package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/client"
)

func TestCollectPages(t *testing.T) {
	pages := map[string]struct {
		items []int
		next  string
	}{
		"":   {items: []int{1, 2}, next: "p2"},
		"p2": {items: []int{3}, next: "p3"},
		"p3": {items: []int{4, 5}, next: ""},
	}
	calls := 0
	all, err := client.CollectPages(t.Context(), func(ctx context.Context, pageKey string) ([]int, string, error) {
		calls++
		p := pages[pageKey]
		return p.items, p.next, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, all)
	assert.Equal(t, 3, calls)
}

func TestCollectPagesSinglePage(t *testing.T) {
	all, err := client.CollectPages(t.Context(), func(ctx context.Context, pageKey string) ([]string, string, error) {
		return []string{"only"}, "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, all)
}

func TestCollectPagesDetectsImmediateLoop(t *testing.T) {
	// A server that keeps returning the same cursor is caught after the
	// second fetch, not retried forever.
	calls := 0
	_, err := client.CollectPages(t.Context(), func(ctx context.Context, pageKey string) ([]int, string, error) {
		calls++
		return []int{calls}, "stuck", nil
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var loopErr *aulterrors.PaginationLoopError
	require.ErrorAs(t, err, &loopErr)
	assert.Equal(t, "stuck", loopErr.Cursor)
	assert.EqualError(t, err, `pagination cursor repeated: "stuck"`)
}

func TestCollectPagesDetectsLongerCycle(t *testing.T) {
	next := map[string]string{"": "a", "a": "b", "b": "a"}
	_, err := client.CollectPages(t.Context(), func(ctx context.Context, pageKey string) ([]int, string, error) {
		return nil, next[pageKey], nil
	})
	var loopErr *aulterrors.PaginationLoopError
	require.ErrorAs(t, err, &loopErr)
	assert.Equal(t, "a", loopErr.Cursor)
}

func TestCollectPagesPropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("boom")
	_, err := client.CollectPages(t.Context(), func(ctx context.Context, pageKey string) ([]int, string, error) {
		return nil, "", fetchErr
	})
	assert.ErrorIs(t, err, fetchErr)
}
