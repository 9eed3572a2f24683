package factory

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/detail"
	"github.com/ib-77/outcome/pkg/rop/render"
)

// CodeUnexpected marks failures converted from an unexpected panic or error.
const CodeUnexpected = "UNEXPECTED"

// Success wraps value. It never logs and cannot fail.
func Success[T any](value T) rop.Result[T] {
	return rop.Succeed(value)
}

// APIErrorNoLog wraps an external API error response without logging.
func APIErrorNoLog[T any](ctx context.Context, opts CallOptions, code string,
	response detail.APIResponse) rop.Result[T] {
	return rop.Fail[T](detail.NewAPIError(opts.detailOptions(ctx, code, ""), response))
}

// APIError wraps an external API error response and reports it unless
// opts.NoLog is set.
func APIError[T any](ctx context.Context, opts CallOptions, code string,
	response detail.APIResponse) rop.Result[T] {

	d := detail.NewAPIError(opts.detailOptions(ctx, code, ""), response)
	if opts.shouldLog(ctx) {
		core.GetLogger(ctx).APIError(logContext(d, opts), response, codeParam(code))
	}
	return rop.Fail[T](d)
}

// AssertionFailedError reports a violated invariant at error severity and
// returns an AssertionFailed failure. message is stringified; extra params are
// appended to the detail message and passed to the logger.
func AssertionFailedError[T any](ctx context.Context, opts CallOptions, code string,
	message any, extra ...any) rop.Result[T] {

	text := render.Stringify(message)
	d := detail.NewAssertionFailed(opts.detailOptions(ctx, code, render.JoinParams(text, extra...)))
	if opts.shouldLog(ctx) {
		core.GetLogger(ctx).AssertionFailed(logContext(d, opts), text, logParams(code, extra)...)
	}
	return rop.Fail[T](d)
}

// TechnicalError reports an unexpected runtime failure at error severity and
// returns a Technical failure.
func TechnicalError[T any](ctx context.Context, opts CallOptions, code string,
	message any, extra ...any) rop.Result[T] {

	text := render.Stringify(message)
	d := detail.NewTechnical(opts.detailOptions(ctx, code, render.JoinParams(text, extra...)))
	if opts.shouldLog(ctx) {
		core.GetLogger(ctx).Error(logContext(d, opts), text, logParams(code, extra)...)
	}
	return rop.Fail[T](d)
}

// UserError reports an expected user-facing rejection at debug severity.
func UserError[T any](ctx context.Context, opts CallOptions, code, message string) rop.Result[T] {
	d := detail.NewUser(opts.detailOptions(ctx, code, message))
	if opts.shouldLog(ctx) {
		core.GetLogger(ctx).Debug(logContext(d, opts), message, codeParam(code))
	}
	return rop.Fail[T](d)
}

// ShortCircuitedError reports an intentional early exit at debug severity.
func ShortCircuitedError[T any](ctx context.Context, opts CallOptions, code, message string) rop.Result[T] {
	d := detail.NewShortCircuited(opts.detailOptions(ctx, code, message))
	if opts.shouldLog(ctx) {
		core.GetLogger(ctx).Debug(logContext(d, opts), message, codeParam(code))
	}
	return rop.Fail[T](d)
}

// NotFoundError returns a NotFound failure, reported at debug severity.
func NotFoundError[T any](ctx context.Context, opts CallOptions, code, message string) rop.Result[T] {
	d := detail.NewNotFound(opts.detailOptions(ctx, code, message))
	if opts.shouldLog(ctx) {
		core.GetLogger(ctx).Debug(logContext(d, opts), message, codeParam(code))
	}
	return rop.Fail[T](d)
}

// Unexpected converts a caught value into a Technical failure coded
// CodeUnexpected, logged at error severity.
func Unexpected[T any](ctx context.Context, opts CallOptions, caught any) rop.Result[T] {
	return TechnicalError[T](ctx, opts, CodeUnexpected, caught)
}

// FromErrorObject classifies an arbitrary caught value. An error whose chain
// contains *rop.AssertionError becomes AssertionFailed; anything else,
// including nil and non-error values, becomes Technical.
func FromErrorObject[T any](ctx context.Context, opts CallOptions, caught any) rop.Result[T] {
	err, ok := caught.(error)
	if !ok || rop.IsNil(caught) {
		return TechnicalError[T](ctx, opts, CodeUnexpected, caught)
	}

	var assertion *rop.AssertionError
	if errors.As(err, &assertion) {
		return AssertionFailedError[T](ctx, opts, CodeUnexpected, caught)
	}
	return TechnicalError[T](ctx, opts, CodeUnexpected, caught)
}
