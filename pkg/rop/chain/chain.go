package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/detail"
	"github.com/ib-77/outcome/pkg/rop/factory"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Succeed(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.AndThen(c.ctx, c.result, onSuccess),
	}
}

// ThenCatchDefault is Then with panics converted to a logged Technical failure
func ThenCatchDefault[T, U any](c *Chain[T], opts factory.CallOptions,
	onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.AndThenCatchDefault(c.ctx, c.result, opts, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], opts factory.CallOptions,
	tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, opts, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapCatchDefault is Map with panics converted to a logged Technical failure
func MapCatchDefault[T, U any](c *Chain[T], opts factory.CallOptions,
	onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.MapCatchDefault(c.ctx, c.result, opts, onSuccess),
	}
}

// Validate rejects the value with a User failure when validate says so
func (c *Chain[T]) Validate(opts factory.CallOptions, code string,
	validate func(context.Context, T) (bool, string)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Validate(c.ctx, c.result, opts, code, validate),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Recover lets onFailure compensate a failed chain
func (c *Chain[T]) Recover(onFailure func(context.Context, detail.Detail) rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OrElse(c.ctx, c.result, onFailure),
	}
}

// Finally collapses the chain into a final value using solo.Fold
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, detail.Detail) U) U {
	return solo.Fold(c.ctx, c.result, onSuccess, onFailure)
}
