package client

import (
	"context"

	"github.com/ault-network/ault-go/aulterrors"
)

// PageFetcher returns one page of items plus the next cursor; an empty
// cursor ends the walk.
type PageFetcher[T any] func(ctx context.Context, pageKey string) (items []T, nextKey string, err error)

// CollectPages walks a paginated endpoint to exhaustion. Any cursor
// seen before — including an immediate repeat — fails fast with a
// PaginationLoopError instead of looping against a misbehaving server.
func CollectPages[T any](ctx context.Context, fetch PageFetcher[T]) ([]T, error) {
	var all []T
	seen := map[string]bool{"": true}
	pageKey := ""
	for {
		items, nextKey, err := fetch(ctx, pageKey)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if nextKey == "" {
			return all, nil
		}
		if seen[nextKey] {
			return nil, &aulterrors.PaginationLoopError{Cursor: nextKey}
		}
		seen[nextKey] = true
		pageKey = nextKey
	}
}
