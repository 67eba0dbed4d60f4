// Package metadata models the properties attached to a metadata reference:
// a pointer from a compilation to a previously-built artifact it consumes.
//
// The central type is Properties, an immutable value describing how one
// reference is treated (assembly vs module, extern aliases, interop-type
// embedding). All invariants are checked once at construction and every
// derived copy re-validates, so a Properties that exists is valid for its
// entire lifetime.
//
// The Golden Rule: pkg/metadata imports only stdlib and the hash primitive.
// The resolver and CLI depend on metadata, not the reverse.
package metadata
