package rop

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ib-77/outcome/pkg/rop/render"
)

const maxStackDepth = 32

// AssertionError is the panic value raised by Assert. factory.FromErrorObject
// classifies it (anywhere in an error chain) as an AssertionFailed detail.
type AssertionError struct {
	Message string
	stack   []runtime.Frame
}

// NewAssertionError captures the caller's stack.
func NewAssertionError(message string, params ...any) *AssertionError {
	return &AssertionError{
		Message: render.JoinParams(message, params...),
		stack:   captureStack(3),
	}
}

// Assert panics with an *AssertionError when cond is false.
func Assert(cond bool, message string, params ...any) {
	if !cond {
		panic(NewAssertionError(message, params...))
	}
}

func (e *AssertionError) Error() string {
	return "assertion failed: " + e.Message
}

// Stack renders the captured frames, most recent first.
func (e *AssertionError) Stack() string {
	lines := make([]string, 0, len(e.stack))
	for _, fr := range e.stack {
		lines = append(lines, fmt.Sprintf("%s %s:%d", fr.Function, fr.File, fr.Line))
	}
	return strings.Join(lines, "\n")
}

func captureStack(skip int) []runtime.Frame {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]runtime.Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, fr)
		if !more {
			break
		}
	}
	return out
}
