package boolval

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"sync"
)

//go:generate stringer -type=Capability

// Capability is one unit of shared boolean behavior that a library can
// claim at load time. At most one loaded library owns each capability
// per registry.
type Capability uint8

// Known capabilities.
const (
	CapabilityInvalid Capability = iota

	// CapabilityType is the binding of the shared boolean type itself.
	CapabilityType
	// CapabilityNumber is the conversion of a truth value to 1 or 0.
	CapabilityNumber
	// CapabilityString is the conversion of a truth value to "1" or "0".
	CapabilityString
	// CapabilityLogic is the conversion of a truth value to a native bool.
	CapabilityLogic
)

// Owner is the name under which this module claims capabilities.
const Owner = "boolval"

// Registration records which library claimed a capability, and with what
// implementation.
type Registration struct {
	Owner string
	Impl  interface{}
}

// Registry tracks which library owns each capability of the shared
// boolean type. Registration happens once per capability, normally
// during package initialization; a capability that is already claimed is
// left untouched, so the earliest loaded library wins. Lookups are safe
// for concurrent use once loading has settled.
type Registry struct {
	mu sync.RWMutex

	// passive disables claiming capabilities for this registry entirely.
	passive bool
	// diag, if set, receives a line for every capability that a
	// registration left untouched because another owner holds it.
	diag io.Writer

	entries map[Capability]Registration
}

// NewRegistry creates a new, ready to use Registry, already applying all
// given options. By default the registry is active and silent.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[Capability]Registration),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterIfAbsent claims c for owner unless an earlier registration
// already holds it. It reports whether the registration took effect.
// Existing registrations are never overwritten; losing a claim is not an
// error, it only produces a diagnostic when diagnostics are enabled.
func (r *Registry) RegisterIfAbsent(c Capability, owner string, impl interface{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[c]; ok {
		if r.diag != nil {
			_, _ = fmt.Fprintf(r.diag, "boolval: %s already provided by %q, leaving it untouched\n", c, existing.Owner)
		}
		return false
	}
	r.entries[c] = Registration{Owner: owner, Impl: impl}
	return true
}

// Lookup returns the registration holding c, if any.
func (r *Registry) Lookup(c Capability) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries[c]
	return reg, ok
}

// Capabilities returns all claimed capabilities in ascending order.
func (r *Registry) Capabilities() []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps := make([]Capability, 0, len(r.entries))
	for c := range r.entries {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// Passive reports whether this registry refuses claims (see WithPassive).
func (r *Registry) Passive() bool { return r.passive }

// Number converts a truth value to a number through whoever owns
// CapabilityNumber. Without an owner it falls back to 1 and 0, which is
// also what this module registers.
func (r *Registry) Number(v bool) int {
	if reg, ok := r.Lookup(CapabilityNumber); ok {
		if f, ok := reg.Impl.(func(bool) int); ok {
			return f(v)
		}
	}
	if v {
		return 1
	}
	return 0
}

// Text converts a truth value to a string through whoever owns
// CapabilityString, falling back to "1" and "0".
func (r *Registry) Text(v bool) string {
	if reg, ok := r.Lookup(CapabilityString); ok {
		if f, ok := reg.Impl.(func(bool) string); ok {
			return f(v)
		}
	}
	if v {
		return "1"
	}
	return "0"
}

// Logic converts a truth value to a native bool through whoever owns
// CapabilityLogic, falling back to the value itself.
func (r *Registry) Logic(v bool) bool {
	if reg, ok := r.Lookup(CapabilityLogic); ok {
		if f, ok := reg.Impl.(func(bool) bool); ok {
			return f(v)
		}
	}
	return v
}

// BoolType returns the type holding CapabilityType, falling back to this
// module's *Bool.
func (r *Registry) BoolType() reflect.Type {
	if reg, ok := r.Lookup(CapabilityType); ok {
		if t, ok := reg.Impl.(reflect.Type); ok {
			return t
		}
	}
	return reflect.TypeOf((*Bool)(nil))
}

// Install claims every capability this module implements, skipping each
// one that an earlier loaded library already holds. Installing into a
// passive registry does nothing.
func Install(r *Registry) {
	if r.Passive() {
		return
	}

	r.RegisterIfAbsent(CapabilityType, Owner, reflect.TypeOf((*Bool)(nil)))
	r.RegisterIfAbsent(CapabilityNumber, Owner, func(v bool) int {
		if v {
			return 1
		}
		return 0
	})
	r.RegisterIfAbsent(CapabilityString, Owner, func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	})
	r.RegisterIfAbsent(CapabilityLogic, Owner, func(v bool) bool { return v })
}

var defaultRegistry = NewRegistry(envOptions()...)

func init() {
	Install(defaultRegistry)
}

// DefaultRegistry returns the process-wide registry that IsBool, Type
// and the Bool conversion methods consult.
func DefaultRegistry() *Registry { return defaultRegistry }

// envOptions derives the default registry's options from the
// environment, read once at load time. BOOLVAL_PASSIVE makes the default
// registry passive, BOOLVAL_VERBOSE routes diagnostics to stderr.
func envOptions() []Option {
	var opts []Option
	if envBool("BOOLVAL_PASSIVE") {
		opts = append(opts, WithPassive(true))
	}
	if envBool("BOOLVAL_VERBOSE") {
		opts = append(opts, WithDiagnostics(os.Stderr))
	}
	return opts
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
