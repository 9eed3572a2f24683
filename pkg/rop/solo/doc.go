// Package solo contains single-value, synchronous operations on rop.Result[T].
// Every operation is a free function taking ctx first so it can change the
// value type; callbacks receive the same ctx.
//
// Callbacks run under one of three failure-containment policies, chosen by
// the function name:
// - no suffix: a panic in the callback propagates to the caller
// - CatchDefault: a panic becomes a logged Technical failure coded UNEXPECTED
// - Catch: a panic becomes exactly factory(recovered) and nothing is logged
//
// Highlights:
// - Map/AndThen/OrElse: transform, bind and compensate
// - Fold: reduce to a plain value via success/failure handlers
// - Tee/DoubleTee: side effects that leave the result untouched
// - Validate/Try: lift predicates and (value, error) functions
// - Sequence/Traverse: collect many results into one
package solo
