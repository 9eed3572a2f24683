package rop

import "github.com/ib-77/outcome/pkg/rop/detail"

// Discriminated exposes which variant a Result is.
type Discriminated interface {
	// Tag returns TagSuccess or TagFailure.
	Tag() Tag
	IsSuccess() bool
	IsFailure() bool
}

// ValueAccessor extracts the success value with an explicit fallback.
type ValueAccessor[T any] interface {
	// ValueOrNil returns a pointer to the value, or nil on failure.
	ValueOrNil() *T
	// ValueOrZero returns the value, or the zero value on failure.
	ValueOrZero() T
	ValueOrDefault(def T) T
	ValueOrElse(onFailure func(d detail.Detail) T) T
	// ValueOrPanic panics with exactly factory(d) on failure.
	ValueOrPanic(factory func(d detail.Detail) error) T
}

// DetailsAccessor extracts the failure payload with an explicit fallback.
type DetailsAccessor interface {
	ErrorDetailsOrNil() detail.Detail
	ErrorDetailsOrDefault(def detail.Detail) detail.Detail
	ErrorDetailsOrElse(onSuccess func() detail.Detail) detail.Detail
	// ErrorDetailsOrPanic panics with exactly factory() on success.
	ErrorDetailsOrPanic(factory func() error) detail.Detail
}

// ErrorKindGuards report the exact variant of the failure payload. All of
// them are false on success.
type ErrorKindGuards interface {
	IsAPIError() bool
	IsAssertionFailed() bool
	IsTechnical() bool
	IsUser() bool
	IsShortCircuited() bool
	IsKind(tag detail.Tag) bool
}
