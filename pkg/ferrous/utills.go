package ferrous

import (
	"reflect"
)

// IsNil reports whether i is nil, including typed nil pointers, maps,
// slices, channels, functions and interfaces hiding behind a non-nil
// interface value. Construction factories use it to fail fast on absent
// payloads.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// equalValues is the single equality notion used by Contains, ContainsErr
// and the Equal* helpers: deep value equality, never identity.
func equalValues(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
