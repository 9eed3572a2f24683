package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/detail"
	"github.com/ib-77/outcome/pkg/rop/factory"
)

// Tee calls onSuccess for its side effect and returns input unchanged.
func Tee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.ValueOrZero())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, d detail.Detail)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.ValueOrZero())
	} else {
		onFailure(ctx, input.ErrorDetailsOrNil())
	}
	return input
}

// Validate turns a rejected success into a User failure with the given code
// and the message returned by validate.
func Validate[T any](ctx context.Context, input rop.Result[T], opts factory.CallOptions, code string,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsFailure() {
		return input
	}
	if valid, errMsg := validate(ctx, input.ValueOrZero()); !valid {
		return factory.UserError[T](ctx, opts, code, errMsg)
	}
	return input
}

// Try calls a (value, error) function on the success value. A returned error
// is classified by factory.FromErrorObject.
func Try[In, Out any](ctx context.Context, input rop.Result[In], opts factory.CallOptions,
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return propagate[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.ValueOrZero())
	if err != nil {
		return factory.FromErrorObject[Out](ctx, opts, err)
	}
	return rop.Succeed(out)
}
