// Package detail defines the closed hierarchy of structured failure payloads
// carried by a failed Result.
//
// Highlights:
// - ApiError: wraps an external API's problem response
// - AssertionFailed: an internal invariant was violated (a defect)
// - Technical: an unexpected runtime failure
// - User: an expected validation or business-rule rejection
// - ShortCircuited: an intentional early exit
// - custom variants registered in custom_tags.go (NotFound ships by default)
//
// Every variant implements error; Error returns FormatErrorResult.
package detail
