// Package idgen produces the identifiers attached to error details: short
// support-reference instance ids (e.g. AB3K-9XQ1) and correlation tokens.
//
// The default UUID generator draws its randomness from github.com/google/uuid.
package idgen
