package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ib-77/outcome/pkg/rop/render"
)

const (
	kindAssertion = "assertion_failed"
	kindAPIError  = "api_error"
)

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

func (s *SlogLogger) Error(lc Context, message string, params ...any) {
	s.log(slog.LevelError, lc, "", message, params)
}

func (s *SlogLogger) Debug(lc Context, message string, params ...any) {
	s.log(slog.LevelDebug, lc, "", message, params)
}

func (s *SlogLogger) AssertionFailed(lc Context, message string, params ...any) {
	s.log(slog.LevelError, lc, kindAssertion, message, params)
}

func (s *SlogLogger) APIError(lc Context, response any, params ...any) {
	s.log(slog.LevelError, lc, kindAPIError, render.Stringify(response), params)
}

func (s *SlogLogger) log(level slog.Level, lc Context, kind, message string, params []any) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs, slog.String("context", render.FormatContext(lc.Chain)))
	if kind != "" {
		attrs = append(attrs, slog.String("kind", kind))
	}
	if lc.CorrelationID != "" {
		attrs = append(attrs, slog.String("correlation_id", lc.CorrelationID))
	}
	if lc.ErrorInstanceID != "" {
		attrs = append(attrs, slog.String("error_instance_id", lc.ErrorInstanceID))
	}
	if len(params) > 0 {
		rendered := make([]string, 0, len(params))
		for _, p := range params {
			rendered = append(rendered, render.Stringify(p))
		}
		attrs = append(attrs, slog.String("params", strings.Join(rendered, render.ParamSeparator)))
	}

	s.logger.LogAttrs(ctx, level, message, attrs...)
}
