package factory

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop/core"
	"github.com/ib-77/outcome/pkg/rop/detail"
	"github.com/ib-77/outcome/pkg/rop/logging"
)

const componentPrefix = "factory - "

// CallOptions describes the caller of a facade function.
type CallOptions struct {
	// Context is the caller's call-site chain, outermost first.
	Context         []string
	ErrorInstanceID string
	CorrelationID   string
	// NoLog suppresses the log entry a facade call would otherwise emit.
	NoLog bool
}

// Named is shorthand for CallOptions with a call-site chain.
func Named(chain ...string) CallOptions {
	return CallOptions{Context: chain}
}

func (o CallOptions) detailOptions(ctx context.Context, code, message string) detail.Options {
	return detail.Options{
		Context:         o.Context,
		ErrorCode:       code,
		ErrorMessage:    message,
		ErrorInstanceID: o.ErrorInstanceID,
		CorrelationID:   o.CorrelationID,
		Generator:       core.GetIDGenerator(ctx),
	}
}

func (o CallOptions) shouldLog(ctx context.Context) bool {
	return !o.NoLog && core.IsLoggingEnabled(ctx, true)
}

func logContext(d detail.Detail, opts CallOptions) logging.Context {
	chain := make([]string, 0, len(opts.Context)+1)
	chain = append(chain, componentPrefix+string(d.Tag()))
	chain = append(chain, opts.Context...)
	return logging.Context{
		Chain:           chain,
		CorrelationID:   d.CorrelationID(),
		ErrorInstanceID: d.ErrorInstanceID(),
	}
}

func codeParam(code string) string {
	return "ErrorCode: " + code
}

func logParams(code string, extra []any) []any {
	params := make([]any, 0, len(extra)+1)
	params = append(params, codeParam(code))
	return append(params, extra...)
}
