package factory

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// WrapDefault lifts fn into a function with the same argument that returns a
// Result, applying TryCatchDefault around every call.
func WrapDefault[A, T any](opts CallOptions,
	fn func(ctx context.Context, a A) (T, error)) func(ctx context.Context, a A) rop.Result[T] {
	return func(ctx context.Context, a A) rop.Result[T] {
		return TryCatchDefault(ctx, opts, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		})
	}
}

// WrapDefault2 is WrapDefault for two-argument functions.
func WrapDefault2[A, B, T any](opts CallOptions,
	fn func(ctx context.Context, a A, b B) (T, error)) func(ctx context.Context, a A, b B) rop.Result[T] {
	return func(ctx context.Context, a A, b B) rop.Result[T] {
		return TryCatchDefault(ctx, opts, func(ctx context.Context) (T, error) {
			return fn(ctx, a, b)
		})
	}
}

// WrapDefaultAsync is WrapDefault delivering its Result on a channel.
func WrapDefaultAsync[A, T any](opts CallOptions,
	fn func(ctx context.Context, a A) (T, error)) func(ctx context.Context, a A) <-chan rop.Result[T] {
	return func(ctx context.Context, a A) <-chan rop.Result[T] {
		return TryCatchDefaultAsync(ctx, opts, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		})
	}
}

// Wrap lifts fn, applying TryCatch with factory around every call.
func Wrap[A, T any](fn func(ctx context.Context, a A) (T, error),
	factory rop.FailureFactory) func(ctx context.Context, a A) rop.Result[T] {
	return func(ctx context.Context, a A) rop.Result[T] {
		return TryCatch(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		}, factory)
	}
}

// Wrap2 is Wrap for two-argument functions.
func Wrap2[A, B, T any](fn func(ctx context.Context, a A, b B) (T, error),
	factory rop.FailureFactory) func(ctx context.Context, a A, b B) rop.Result[T] {
	return func(ctx context.Context, a A, b B) rop.Result[T] {
		return TryCatch(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a, b)
		}, factory)
	}
}

// WrapAsync is Wrap delivering its Result on a channel.
func WrapAsync[A, T any](fn func(ctx context.Context, a A) (T, error),
	factory rop.FailureFactory) func(ctx context.Context, a A) <-chan rop.Result[T] {
	return func(ctx context.Context, a A) <-chan rop.Result[T] {
		return TryCatchAsync(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		}, factory)
	}
}
