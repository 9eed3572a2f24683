package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const (
	// UnknownContext is rendered when no call-site chain is available.
	UnknownContext = "<unknown context>"

	ParamSeparator = " | "

	maxCauseDepth = 16
)

// StackTracer is implemented by errors that carry a captured call stack.
type StackTracer interface {
	Stack() string
}

type errorView struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Stack   string `json:"stack,omitempty"`
	Cause   any    `json:"cause,omitempty"`
}

// Stringify converts any value, typically a recovered panic or a returned
// error, into a stable string. It never panics: a value whose Error,
// MarshalJSON or Stack method panics is rendered with fmt.Sprint.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		if isNilPointer(x) {
			return "null"
		}
		if s, err := errorJSON(x); err == nil {
			return s
		}
		return fmt.Sprint(x)
	}

	s, err := marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func errorJSON(err error) (s string, fail error) {
	defer func() {
		if rec := recover(); rec != nil {
			fail = fmt.Errorf("render: error view panicked: %v", rec)
		}
	}()
	return marshal(viewOf(err, 0))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func viewOf(err error, depth int) *errorView {
	view := &errorView{
		Message: err.Error(),
		Name:    fmt.Sprintf("%T", err),
	}

	var tracer StackTracer
	if errors.As(err, &tracer) {
		view.Stack = tracer.Stack()
	}

	if depth >= maxCauseDepth {
		return view
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if cause := u.Unwrap(); cause != nil && !isNilPointer(cause) {
			view.Cause = viewOf(cause, depth+1)
		}
	case interface{ Unwrap() []error }:
		causes := make([]*errorView, 0)
		for _, cause := range u.Unwrap() {
			if cause != nil && !isNilPointer(cause) {
				causes = append(causes, viewOf(cause, depth+1))
			}
		}
		if len(causes) > 0 {
			view.Cause = causes
		}
	}

	return view
}

func marshal(v any) (s string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: marshal panicked: %v", rec)
		}
	}()

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FormatContext joins a call-site chain with dots.
func FormatContext(chain []string) string {
	if len(chain) == 0 {
		return UnknownContext
	}
	return strings.Join(chain, ".")
}

// JoinParams appends the stringified params to message.
func JoinParams(message string, params ...any) string {
	if len(params) == 0 {
		return message
	}
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, message)
	for _, p := range params {
		parts = append(parts, Stringify(p))
	}
	return strings.Join(parts, ParamSeparator)
}
