package rop

import (
	"reflect"
)

// IsNil reports whether i is nil or a typed nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Protect calls fn and recovers a panic raised by it. panicked reports
// whether fn panicked; recovered holds the panic value.
func Protect[U any](fn func() U) (out U, recovered any, panicked bool) {
	defer func() {
		if rec := recover(); rec != nil {
			recovered = rec
			panicked = true
		}
	}()
	return fn(), nil, false
}
