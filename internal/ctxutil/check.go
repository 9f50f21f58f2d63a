// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled reports whether the context has been canceled or exceeded its
// deadline, returning the context error if so and nil otherwise. Used at
// the entry points of blocking operations.
//
// ctx.Err() already returns nil while Done is open, so no select is needed.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
