// Package problem models RFC 9457 HTTP problem details, the structured error
// body returned by external APIs. Details satisfies detail.APIResponse so a
// decoded body can be wrapped directly into an ApiError failure.
package problem
