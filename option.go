package boolval

import "io"

type Option func(*Registry)

// WithDiagnostics makes the registry report every capability it leaves
// untouched because another library claimed it first. Diagnostics are
// single lines written to w.
func WithDiagnostics(w io.Writer) Option {
	return func(r *Registry) {
		r.diag = w
	}
}

// WithPassive disables claiming capabilities for this registry entirely.
// A passive registry coexists with other libraries without competing for
// any capability; Install becomes a no-op and all conversions use the
// built-in behavior.
func WithPassive(passive bool) Option {
	return func(r *Registry) {
		r.passive = passive
	}
}
