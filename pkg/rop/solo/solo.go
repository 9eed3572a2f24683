package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/detail"
	"github.com/ib-77/outcome/pkg/rop/factory"
)

// Succeed is rop.Succeed, re-exported for pipelines that only import solo.
func Succeed[T any](input T) rop.Result[T] {
	return rop.Succeed(input)
}

// Fail is rop.Fail, re-exported for pipelines that only import solo.
func Fail[T any](d detail.Detail) rop.Result[T] {
	return rop.Fail[T](d)
}

// propagate re-parameterizes a failure, keeping the same detail instance.
func propagate[In, Out any](input rop.Result[In]) rop.Result[Out] {
	if f, ok := input.(rop.Failure[In]); ok {
		return rop.FailAs[Out](f)
	}
	return rop.Fail[Out](input.ErrorDetailsOrNil())
}

func catchDefault[T any](ctx context.Context, opts factory.CallOptions,
	fn func() rop.Result[T]) rop.Result[T] {

	out, recovered, panicked := rop.Protect(fn)
	if panicked {
		return factory.Unexpected[T](ctx, opts, recovered)
	}
	return out
}

func catchWith[T any](fn func() rop.Result[T], onPanic rop.FailureFactory) rop.Result[T] {
	out, recovered, panicked := rop.Protect(fn)
	if panicked {
		return rop.Fail[T](onPanic(recovered))
	}
	return out
}

func Map[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Succeed(onSuccess(ctx, input.ValueOrZero()))
	}
	return propagate[In, Out](input)
}

func MapCatchDefault[In, Out any](ctx context.Context, input rop.Result[In], opts factory.CallOptions,
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsFailure() {
		return propagate[In, Out](input)
	}
	return catchDefault(ctx, opts, func() rop.Result[Out] {
		return Map(ctx, input, onSuccess)
	})
}

func MapCatch[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out, onPanic rop.FailureFactory) rop.Result[Out] {

	if input.IsFailure() {
		return propagate[In, Out](input)
	}
	return catchWith(func() rop.Result[Out] {
		return Map(ctx, input, onSuccess)
	}, onPanic)
}

// AndThen binds the success value to a function that itself returns a Result.
func AndThen[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.ValueOrZero())
	}
	return propagate[In, Out](input)
}

func AndThenCatchDefault[In, Out any](ctx context.Context, input rop.Result[In], opts factory.CallOptions,
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsFailure() {
		return propagate[In, Out](input)
	}
	return catchDefault(ctx, opts, func() rop.Result[Out] {
		return onSuccess(ctx, input.ValueOrZero())
	})
}

func AndThenCatch[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out], onPanic rop.FailureFactory) rop.Result[Out] {

	if input.IsFailure() {
		return propagate[In, Out](input)
	}
	return catchWith(func() rop.Result[Out] {
		return onSuccess(ctx, input.ValueOrZero())
	}, onPanic)
}

// OrElse hands a failure's detail to onFailure, which may compensate with a
// Success or return another Failure. A Success is returned unchanged.
func OrElse[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, d detail.Detail) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return onFailure(ctx, input.ErrorDetailsOrNil())
	}
	return input
}

func OrElseCatchDefault[T any](ctx context.Context, input rop.Result[T], opts factory.CallOptions,
	onFailure func(ctx context.Context, d detail.Detail) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return catchDefault(ctx, opts, func() rop.Result[T] {
		return onFailure(ctx, input.ErrorDetailsOrNil())
	})
}

func OrElseCatch[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, d detail.Detail) rop.Result[T], onPanic rop.FailureFactory) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return catchWith(func() rop.Result[T] {
		return onFailure(ctx, input.ErrorDetailsOrNil())
	}, onPanic)
}

// MapError replaces a failure's detail. See rop.Result.MapError.
func MapError[T any](input rop.Result[T], mapper func(d detail.Detail) detail.Detail) rop.Result[T] {
	return input.MapError(mapper)
}
