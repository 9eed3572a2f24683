package factory

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

// CodeAwaitAborted marks an Await that ended without receiving a Result.
const CodeAwaitAborted = "AWAIT_ABORTED"

var ErrNoResult = errors.New("factory: async call completed without a result")

type attempt[T any] struct {
	value T
	err   error
}

// run calls fn, reporting a returned error or a panic as caught.
func run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, any, bool) {
	res, recovered, panicked := rop.Protect(func() attempt[T] {
		v, err := fn(ctx)
		return attempt[T]{value: v, err: err}
	})
	if panicked {
		var zero T
		return zero, recovered, true
	}
	if res.err != nil {
		var zero T
		return zero, res.err, true
	}
	return res.value, nil, false
}

// TryCatchDefault runs fn. A returned error or a panic is classified with
// FromErrorObject, which also logs it.
func TryCatchDefault[T any](ctx context.Context, opts CallOptions,
	fn func(ctx context.Context) (T, error)) rop.Result[T] {

	v, caught, failed := run(ctx, fn)
	if failed {
		return FromErrorObject[T](ctx, opts, caught)
	}
	return rop.Succeed(v)
}

// TryCatch runs fn. A returned error or a panic is handed to factory; logging
// is the factory's responsibility.
func TryCatch[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	factory rop.FailureFactory) rop.Result[T] {

	v, caught, failed := run(ctx, fn)
	if failed {
		return rop.Fail[T](factory(caught))
	}
	return rop.Succeed(v)
}

// TryCatchDefaultAsync runs TryCatchDefault on a new goroutine. The returned
// channel yields exactly one Result and is then closed.
func TryCatchDefaultAsync[T any](ctx context.Context, opts CallOptions,
	fn func(ctx context.Context) (T, error)) <-chan rop.Result[T] {
	return core.ToChan(func() rop.Result[T] {
		return TryCatchDefault(ctx, opts, fn)
	})
}

// TryCatchAsync runs TryCatch on a new goroutine.
func TryCatchAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	factory rop.FailureFactory) <-chan rop.Result[T] {
	return core.ToChan(func() rop.Result[T] {
		return TryCatch(ctx, fn, factory)
	})
}

// Await receives the Result of an async call. If ctx is done first, or the
// channel closes empty, it returns a Technical failure coded CodeAwaitAborted.
// The async call itself is not cancelled.
func Await[T any](ctx context.Context, opts CallOptions, ch <-chan rop.Result[T]) rop.Result[T] {
	res, ok := core.FromChanFirstOrDefault[rop.Result[T]](ctx, ch, nil)
	if ok && res != nil {
		return res
	}

	cause := ctx.Err()
	if cause == nil {
		cause = ErrNoResult
	}
	return TechnicalError[T](ctx, opts, CodeAwaitAborted, cause)
}
