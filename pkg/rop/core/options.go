package core

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop/idgen"
	"github.com/ib-77/outcome/pkg/rop/logging"
)

type OptionKey string

const (
	LoggerOptionKey      OptionKey = "logger_options"
	IDGeneratorOptionKey OptionKey = "id_generator_options"
	LoggingOptionKey     OptionKey = "logging_options"
)

type LoggerOptions struct {
	Logger logging.Logger
}

type IDGeneratorOptions struct {
	Generator idgen.Generator
}

type LoggingOptions struct {
	Enabled bool
}

// WithLogger installs the logging collaborator used by facade calls made
// with the returned context.
func WithLogger(ctx context.Context, logger logging.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// GetLogger returns the installed logger, or a no-op logger.
func GetLogger(ctx context.Context) logging.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return logging.Nop()
}

func WithIDGenerator(ctx context.Context, gen idgen.Generator) context.Context {
	return context.WithValue(ctx, IDGeneratorOptionKey, IDGeneratorOptions{Generator: gen})
}

// GetIDGenerator returns the installed generator, or idgen.Default.
func GetIDGenerator(ctx context.Context) idgen.Generator {
	options, ok := ctx.Value(IDGeneratorOptionKey).(IDGeneratorOptions)
	if ok && options.Generator != nil {
		return options.Generator
	}
	return idgen.Default
}

// WithLoggingDisabled mutes every facade log call made with the returned
// context, regardless of per-call options.
func WithLoggingDisabled(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggingOptionKey, LoggingOptions{Enabled: false})
}

func IsLoggingEnabled(ctx context.Context, defaultEnabled bool) bool {
	options, ok := ctx.Value(LoggingOptionKey).(LoggingOptions)
	if ok {
		return options.Enabled
	}
	return defaultEnabled
}
