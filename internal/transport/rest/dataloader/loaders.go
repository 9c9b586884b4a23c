package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

const (
	batchCapacity = 500
	batchWait     = 2 * time.Millisecond
)

func newLoader[V any](fn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(fn,
		dataloader.WithWait[uuid.UUID, V](batchWait),
		dataloader.WithBatchCapacity[uuid.UUID, V](batchCapacity),
	)
}

// groupBy adapts a "rows for these card IDs" query into a BatchFunc. Rows are
// folded per card starting from empty(); cards without rows resolve to empty().
func groupBy[R, V any](
	fetch func(context.Context, []uuid.UUID) ([]R, error),
	keyOf func(R) uuid.UUID,
	fold func(V, R) V,
	empty func() V,
) dataloader.BatchFunc[uuid.UUID, V] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[V] {
		results := make([]*dataloader.Result[V], len(keys))

		rows, err := fetch(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[V]{Error: err}
			}
			return results
		}

		acc := make(map[uuid.UUID]V, len(keys))
		for _, row := range rows {
			k := keyOf(row)
			v, ok := acc[k]
			if !ok {
				v = empty()
			}
			acc[k] = fold(v, row)
		}
		for i, k := range keys {
			v, ok := acc[k]
			if !ok {
				v = empty()
			}
			results[i] = &dataloader.Result[V]{Data: v}
		}
		return results
	}
}

func appendTo[R, T any](pick func(R) T) func([]T, R) []T {
	return func(acc []T, r R) []T { return append(acc, pick(r)) }
}

func emptySlice[T any]() []T { return []T{} }
