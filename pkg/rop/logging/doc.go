// Package logging defines the logging collaborator the Result facade reports
// through, plus a log/slog adapter, a no-op logger and a YAML config loader.
//
// The facade never owns a global logger: the composition root builds one and
// installs it on the context with core.WithLogger.
package logging
