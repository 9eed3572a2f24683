// Package factory builds Results: Success, the five standard failure
// variants (optionally reporting them to the logging collaborator installed
// with core.WithLogger) and the adapters that turn returned errors and panics
// into Results.
//
// Highlights:
// - Success, APIError/APIErrorNoLog, AssertionFailedError, TechnicalError,
// UserError, ShortCircuitedError
// - FromErrorObject: classify a caught value (AssertionError vs Technical)
// - TryCatchDefault/TryCatch (+Async): run a function, convert failure
// - WrapDefault/Wrap (+2, +Async): lift a function into a Result-returning one
// - Await: receive the single Result of an async call
//
// Error and AssertionFailed reports go out at error severity; User and
// ShortCircuited at debug severity, since neither indicates a defect.
package factory
