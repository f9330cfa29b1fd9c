// Package boolval provides a canonical object representation of boolean
// values for serialization libraries. Unlike the native bool, a *Bool
// survives round trips through encoders that need to tell "the boolean
// true" apart from "the number 1": in numeric context it yields 1 or 0,
// in string context "1" or "0", and in logical context the native truth
// value it wraps.
//
// Exactly two canonical instances exist per process, returned by True and
// False. All coercions resolve to one of the two, so holders may compare
// coerced values by identity. Instances built with New carry the same
// behavior but their own identity; use IsBool or Bool() on anything that
// may not be a singleton.
package boolval

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Bool is the shared boolean object type. It wraps 1 for true and 0 for
// false and is immutable after construction.
type Bool struct {
	v uint8
}

var (
	sharedTrue  = &Bool{v: 1}
	sharedFalse = &Bool{v: 0}
)

// True returns the canonical true object. Every call returns the same
// instance.
func True() *Bool { return sharedTrue }

// False returns the canonical false object. Every call returns the same
// instance.
func False() *Bool { return sharedFalse }

// New builds an independent boolean object from v. The result passes
// IsBool and behaves like the matching singleton under all conversions,
// but is never identity-equal to it.
func New(v bool) *Bool {
	if v {
		return &Bool{v: 1}
	}
	return &Bool{}
}

// Of maps a native truth value to the matching canonical singleton.
func Of(v bool) *Bool {
	if v {
		return sharedTrue
	}
	return sharedFalse
}

// Coerce resolves any value to the matching canonical singleton by its
// truth value (see Truthy). It never allocates and is idempotent:
// coercing an already coerced value yields the identical singleton.
func Coerce(v interface{}) *Bool {
	return Of(Truthy(v))
}

// IsBool reports whether v is a boolean object. The check is type based,
// so independently constructed instances pass while native bools,
// numbers, strings and arbitrary other values do not.
func IsBool(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v) == Type()
}

// Type returns the identifier of the shared boolean type, for callers
// comparing types directly instead of calling IsBool. If an earlier
// loaded library claimed the type binding, its type is returned.
func Type() reflect.Type {
	return defaultRegistry.BoolType()
}

func (b *Bool) raw() bool { return b != nil && b.v != 0 }

// Bool returns the wrapped truth value. A nil receiver is false.
func (b *Bool) Bool() bool { return defaultRegistry.Logic(b.raw()) }

// Int returns 1 for true and 0 for false.
func (b *Bool) Int() int { return defaultRegistry.Number(b.raw()) }

// String returns "1" for true and "0" for false.
func (b *Bool) String() string { return defaultRegistry.Text(b.raw()) }

// Hash returns a stable hash of the truth value, identical for all
// instances wrapping the same value. Serializers can use it to
// deduplicate boolean leaves without caring about identity.
func (b *Bool) Hash() uint64 {
	h := xxhash.New()
	if b.raw() {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
