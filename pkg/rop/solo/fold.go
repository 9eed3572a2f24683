package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/detail"
	"github.com/ib-77/outcome/pkg/rop/factory"
)

// Fold reduces input to a plain value. Panics from either handler propagate.
func Fold[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, d detail.Detail) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.ValueOrZero())
	}
	return onFailure(ctx, input.ErrorDetailsOrNil())
}

// FoldCatchDefault is Fold with a guarded onSuccess. A panic in onSuccess is
// converted by factory.Unexpected and the resulting detail is passed to
// onFailure. onFailure itself is never guarded.
func FoldCatchDefault[In, Out any](ctx context.Context, input rop.Result[In], opts factory.CallOptions,
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, d detail.Detail) Out) Out {

	if input.IsFailure() {
		return onFailure(ctx, input.ErrorDetailsOrNil())
	}

	out, recovered, panicked := rop.Protect(func() Out {
		return onSuccess(ctx, input.ValueOrZero())
	})
	if panicked {
		return onFailure(ctx, factory.Unexpected[Out](ctx, opts, recovered).ErrorDetailsOrNil())
	}
	return out
}

// FoldCatch is Fold with a guarded onSuccess; a panic becomes onPanic(x),
// which is passed to onFailure.
func FoldCatch[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, d detail.Detail) Out,
	onPanic rop.FailureFactory) Out {

	if input.IsFailure() {
		return onFailure(ctx, input.ErrorDetailsOrNil())
	}

	out, recovered, panicked := rop.Protect(func() Out {
		return onSuccess(ctx, input.ValueOrZero())
	})
	if panicked {
		return onFailure(ctx, onPanic(recovered))
	}
	return out
}
