package upstream

import (
	"context"
	"slices"
)

// coalesce joins concurrent identical reads onto one in-flight upstream call.
// The shared call runs detached from any single caller's cancellation and is
// bounded by the client timeout; each caller still stops waiting when its own
// context ends.
func coalesce[T any](ctx context.Context, c *Client, key, endpoint string, fn func(context.Context) (T, error)) (T, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.RecordCoalesced(endpoint)
		}
		var out T
		if res.Err != nil {
			return out, res.Err
		}
		out, _ = res.Val.(T)
		return out, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// coalesceSlice is coalesce for collections; every caller gets its own copy.
func coalesceSlice[T any](ctx context.Context, c *Client, key, endpoint string, fn func(context.Context) ([]T, error)) ([]T, error) {
	items, err := coalesce(ctx, c, key, endpoint, fn)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}
