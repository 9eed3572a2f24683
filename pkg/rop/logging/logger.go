package logging

//go:generate mockgen -source logger.go -destination logger_mocks.go -package logging

// Context identifies where a log entry comes from.
type Context struct {
	// Chain is the call-site chain, outermost first.
	Chain           []string
	CorrelationID   string
	ErrorInstanceID string
}

// Raw builds a Context from a single label.
func Raw(label string) Context {
	return Context{Chain: []string{label}}
}

// Logger is the leveled logging collaborator. Calls are synchronous and their
// outcome is never inspected.
type Logger interface {
	Error(lc Context, message string, params ...any)
	Debug(lc Context, message string, params ...any)
	AssertionFailed(lc Context, message string, params ...any)
	APIError(lc Context, response any, params ...any)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Error(Context, string, ...any)           {}
func (nopLogger) Debug(Context, string, ...any)           {}
func (nopLogger) AssertionFailed(Context, string, ...any) {}
func (nopLogger) APIError(Context, any, ...any)           {}
