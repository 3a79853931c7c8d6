// Package exhibit defines a small collection of independent value types
// used to demonstrate validated setters, derived and cached properties,
// tagged classification variants, and open-schema dynamic fields.
//
// The types are unrelated to one another: a person record, a circle's
// geometry, a vehicle taxonomy, a positive-number holder, and a dynamic
// field container. Each type's constructor and accessors are its entire
// interface. Every validation failure wraps ErrValidation, so callers can
// match either the exact cause or the kind.
package exhibit
