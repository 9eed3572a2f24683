// Package render turns arbitrary values into stable, log-friendly strings.
//
// Highlights:
// - Stringify: strings verbatim, errors as a JSON object of their
// message/name/stack/cause, everything else as JSON with a fmt fallback
// - FormatContext: dotted call-site chain or the unknown-context sentinel
// - JoinParams: append extra parameters to a message
package render
