// Package rop defines Result[T], an explicit, inspectable outcome that is
// either a Success carrying a value or a Failure carrying a structured
// detail.Detail.
//
// Highlights:
// - Succeed/Fail: construct Success and Failure
// - ValueOr*/ErrorDetailsOr*: terminal extraction with explicit fallbacks
// - ToTuple/Unwrap: interop with (value, error) call sites
// - MapError: transform the failure payload
// - IsAPIError/IsTechnical/...: exact-variant guards on the failure payload
// - Assert/AssertionError: the panic value classified as AssertionFailed
//
// Type-changing composition (map, andThen, orElse, fold and their catching
// variants) lives in package solo; construction with logging lives in
// package factory.
package rop
