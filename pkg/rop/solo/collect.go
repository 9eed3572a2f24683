package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// Sequence collects the values of inputs in order. The first failure is
// returned as is.
func Sequence[T any](inputs []rop.Result[T]) rop.Result[[]T] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return propagate[T, []T](in)
		}
		values = append(values, in.ValueOrZero())
	}
	return rop.Succeed(values)
}

// Traverse applies f to every input and collects the values. It stops at the
// first failure; later inputs are not visited.
func Traverse[In, Out any](ctx context.Context, inputs []In,
	f func(ctx context.Context, in In) rop.Result[Out]) rop.Result[[]Out] {

	values := make([]Out, 0, len(inputs))
	for _, in := range inputs {
		r := f(ctx, in)
		if r.IsFailure() {
			return propagate[Out, []Out](r)
		}
		values = append(values, r.ValueOrZero())
	}
	return rop.Succeed(values)
}
