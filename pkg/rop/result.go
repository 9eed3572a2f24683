package rop

import (
	"github.com/ib-77/outcome/pkg/rop/detail"
)

// Tag discriminates the two Result variants.
type Tag string

const (
	TagSuccess Tag = "Success"
	TagFailure Tag = "Failure"
)

// CodeNilDetails marks a Failure built from a nil detail.
const CodeNilDetails = "NIL_DETAILS"

// Result is either a Success[T] or a Failure[T]; no other implementation
// exists. Results are immutable: every operation returns a new Result or the
// receiver itself.
//
// Exhaustive matching:
//
//	switch r := res.(type) {
//	case rop.Success[User]:
//		use(r.Value())
//	case rop.Failure[User]:
//		report(r.ErrorDetails())
//	}
type Result[T any] interface {
	Discriminated
	ValueAccessor[T]
	DetailsAccessor
	ErrorKindGuards

	// ToTuple returns (v, nil) on success and (zero, d) on failure.
	ToTuple() (T, detail.Detail)
	// Unwrap returns (v, nil) on success and (zero, d) on failure, with d
	// typed as error.
	Unwrap() (T, error)
	// MapError returns Fail(f(d)) on failure and the receiver on success.
	MapError(f func(d detail.Detail) detail.Detail) Result[T]

	sealed()
}

// Success holds the value of a successful computation.
type Success[T any] struct {
	value T
}

// Failure holds the structured detail of a failed computation.
type Failure[T any] struct {
	details detail.Detail
}

// Succeed wraps value in a Success.
func Succeed[T any](value T) Result[T] {
	return Success[T]{value: value}
}

// Fail wraps d in a Failure. A nil d is replaced by a Technical detail coded
// CodeNilDetails so that a Failure always carries a payload.
func Fail[T any](d detail.Detail) Result[T] {
	if IsNil(d) {
		d = detail.NewTechnical(detail.Options{
			ErrorCode:    CodeNilDetails,
			ErrorMessage: "failure constructed without error details",
		})
	}
	return Failure[T]{details: d}
}

// FailAs re-parameterizes a failure to another value type, keeping the same
// detail instance.
func FailAs[U, T any](f Failure[T]) Result[U] {
	return Failure[U]{details: f.details}
}

// FailureFactory turns a caught panic value or error into a failure detail.
// It is the caller-owned hook of the Catch operation tier.
type FailureFactory func(caught any) detail.Detail

func (s Success[T]) Value() T {
	return s.value
}

func (f Failure[T]) ErrorDetails() detail.Detail {
	return f.details
}

func (Success[T]) sealed() {}
func (Failure[T]) sealed() {}

func (Success[T]) Tag() Tag        { return TagSuccess }
func (Success[T]) IsSuccess() bool { return true }
func (Success[T]) IsFailure() bool { return false }

func (Failure[T]) Tag() Tag        { return TagFailure }
func (Failure[T]) IsSuccess() bool { return false }
func (Failure[T]) IsFailure() bool { return true }

func (s Success[T]) ValueOrNil() *T {
	v := s.value
	return &v
}

func (s Success[T]) ValueOrZero() T                           { return s.value }
func (s Success[T]) ValueOrDefault(T) T                       { return s.value }
func (s Success[T]) ValueOrElse(func(detail.Detail) T) T      { return s.value }
func (s Success[T]) ValueOrPanic(func(detail.Detail) error) T { return s.value }

func (Failure[T]) ValueOrNil() *T {
	return nil
}

func (Failure[T]) ValueOrZero() T {
	var zero T
	return zero
}

func (Failure[T]) ValueOrDefault(def T) T {
	return def
}

func (f Failure[T]) ValueOrElse(onFailure func(d detail.Detail) T) T {
	return onFailure(f.details)
}

func (f Failure[T]) ValueOrPanic(factory func(d detail.Detail) error) T {
	panic(factory(f.details))
}

func (Success[T]) ErrorDetailsOrNil() detail.Detail {
	return nil
}

func (Success[T]) ErrorDetailsOrDefault(def detail.Detail) detail.Detail {
	return def
}

func (Success[T]) ErrorDetailsOrElse(onSuccess func() detail.Detail) detail.Detail {
	return onSuccess()
}

func (Success[T]) ErrorDetailsOrPanic(factory func() error) detail.Detail {
	panic(factory())
}

func (f Failure[T]) ErrorDetailsOrNil() detail.Detail                      { return f.details }
func (f Failure[T]) ErrorDetailsOrDefault(detail.Detail) detail.Detail     { return f.details }
func (f Failure[T]) ErrorDetailsOrElse(func() detail.Detail) detail.Detail { return f.details }
func (f Failure[T]) ErrorDetailsOrPanic(func() error) detail.Detail        { return f.details }

func (s Success[T]) ToTuple() (T, detail.Detail) {
	return s.value, nil
}

func (f Failure[T]) ToTuple() (T, detail.Detail) {
	var zero T
	return zero, f.details
}

func (s Success[T]) Unwrap() (T, error) {
	return s.value, nil
}

func (f Failure[T]) Unwrap() (T, error) {
	var zero T
	return zero, f.details
}

func (s Success[T]) MapError(func(detail.Detail) detail.Detail) Result[T] {
	return s
}

func (f Failure[T]) MapError(fn func(d detail.Detail) detail.Detail) Result[T] {
	return Fail[T](fn(f.details))
}

func (Success[T]) IsAPIError() bool        { return false }
func (Success[T]) IsAssertionFailed() bool { return false }
func (Success[T]) IsTechnical() bool       { return false }
func (Success[T]) IsUser() bool            { return false }
func (Success[T]) IsShortCircuited() bool  { return false }
func (Success[T]) IsKind(detail.Tag) bool  { return false }

func (f Failure[T]) IsAPIError() bool        { return detail.IsAPIError(f.details) }
func (f Failure[T]) IsAssertionFailed() bool { return detail.IsAssertionFailed(f.details) }
func (f Failure[T]) IsTechnical() bool       { return detail.IsTechnical(f.details) }
func (f Failure[T]) IsUser() bool            { return detail.IsUser(f.details) }
func (f Failure[T]) IsShortCircuited() bool  { return detail.IsShortCircuited(f.details) }

func (f Failure[T]) IsKind(tag detail.Tag) bool {
	return detail.HasTag(f.details, tag)
}
