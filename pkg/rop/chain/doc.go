// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous railway chains using solo primitives.
//
// A Chain carries the context it was started with, so steps only take the
// callback. Steps that change the value type are free functions; steps that
// keep it are methods.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenCatchDefault: bind to a function returning Result[U]
// - ThenTry: call a function (U, error) and classify the error
// - Map/MapCatchDefault: transform the successful value (T -> U)
// - Validate: reject a value as a User failure
// - Ensure: run side effects on success without changing the result
// - Recover: compensate a failure
// - Finally: collapse the chain into a final value via handlers
package chain
