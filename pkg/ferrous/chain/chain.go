package chain

import (
	"context"

	"github.com/ib-77/ferrous/pkg/ferrous"
)

// Chain wraps a ferrous.Result with a context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res ferrous.Result[T, error]
}

// Start creates a new chain from an existing Result.
func Start[T any](ctx context.Context, res ferrous.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, ferrous.Ok[T, error](value))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() ferrous.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a Result, short-circuiting
// on failure.
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) ferrous.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// ThenTry composes a function that returns (T, error), converting a non-nil
// error into failure.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}

	v, err := try(c.ctx, c.res.Unwrap())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: ferrous.Err[T, error](err)}
	}
	return Chain[T]{ctx: c.ctx, res: ferrous.Ok[T, error](v)}
}

// Map transforms the successful value, keeping failures untouched.
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: ferrous.Ok[T, error](onOk(c.ctx, c.res.Unwrap()))}
}

// Ensure triggers side effects for the current variant without changing the
// result. Either handler may be nil.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.UnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.ctx, c.res.Unwrap())
	}
	return c
}

// Or returns this chain if successful, otherwise the alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And returns the required chain if this one is successful, otherwise the
// failure wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Then composes a function that switches the chain to a new value type.
func Then[T, U any](c Chain[T], onOk func(context.Context, T) ferrous.Result[U, error]) Chain[U] {
	if c.res.IsErr() {
		return Chain[U]{ctx: c.ctx, res: ferrous.Err[U, error](c.res.UnwrapErr())}
	}
	return Chain[U]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// Map transforms the successful value to a new type.
func Map[T, U any](c Chain[T], onOk func(context.Context, T) U) Chain[U] {
	return Then(c, func(ctx context.Context, t T) ferrous.Result[U, error] {
		return ferrous.Ok[U, error](onOk(ctx, t))
	})
}

// Finally collapses the chain to a final value, delegating to exactly one
// handler.
func Finally[T, U any](c Chain[T],
	onOk func(context.Context, T) U,
	onErr func(context.Context, error) U) U {

	if c.res.IsOk() {
		return onOk(c.ctx, c.res.Unwrap())
	}
	return onErr(c.ctx, c.res.UnwrapErr())
}
