package boolval

import "reflect"

// Booler wraps the Bool method. Types implementing it decide their own
// truth value; *Bool implements it.
type Booler interface {
	// Bool computes the truth value of the receiver.
	Bool() bool
}

// Truthy reports the truth value of v. It is the explicit predicate that
// conditional call sites use in place of implicit coercion:
//
//	if boolval.Truthy(v) { ... }
//
// The rules: nil is false; Booler implementations answer for themselves;
// a native bool is itself; numeric zero, the empty string, zero-length
// slices, maps, arrays and channels, and nil pointers and funcs are
// false. Every other value is true. Truthy accepts any input without
// panicking.
func Truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case Booler:
		return v.Bool()
	case bool:
		return v
	case string:
		return v != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
