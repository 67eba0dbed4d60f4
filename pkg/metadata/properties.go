package metadata

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// GlobalAlias is the reserved alias naming the default declaration space.
// It is always implicitly available and never needs to appear in a
// reference's alias list, though supplying it explicitly is legal.
const GlobalAlias = "global"

// ErrInvalidArgument is the sentinel matched by every construction failure.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a rejected Properties construction.
type InvalidArgumentError struct {
	// Name is the offending argument ("kind", "embedInteropTypes", "aliases").
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) match.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Properties describes how one external metadata reference is treated:
// what kind of artifact it targets, the extern aliases under which the
// artifact's namespaces surface, and whether its interop types are embedded
// into the consumer instead of linked.
//
// The zero value is a valid plain assembly reference. Properties is
// immutable after construction; the With* methods return new values and
// never touch the receiver, so a Properties may be shared freely across
// goroutines without synchronization.
type Properties struct {
	kind              Kind
	aliases           []string
	embedInteropTypes bool
}

// NewProperties validates and builds a Properties value.
//
// Validation order:
//  1. kind must be KindAssembly or KindModule
//  2. a module cannot embed interop types
//  3. a module cannot carry aliases
//  4. every alias must satisfy IsValidAlias
//
// The alias slice is copied; callers keep ownership of their argument.
func NewProperties(kind Kind, aliases []string, embedInteropTypes bool) (Properties, error) {
	if !kind.isRecognized() {
		return Properties{}, &InvalidArgumentError{
			Name:   "kind",
			Reason: fmt.Sprintf("unrecognized reference kind %d", int(kind)),
		}
	}
	if kind == KindModule && embedInteropTypes {
		return Properties{}, &InvalidArgumentError{
			Name:   "embedInteropTypes",
			Reason: "a module reference cannot embed interop types",
		}
	}
	if kind == KindModule && len(aliases) > 0 {
		return Properties{}, &InvalidArgumentError{
			Name:   "aliases",
			Reason: "a module reference cannot be aliased",
		}
	}
	for _, a := range aliases {
		if !IsValidAlias(a) {
			return Properties{}, &InvalidArgumentError{
				Name:   "aliases",
				Reason: fmt.Sprintf("%q is not a valid alias", a),
			}
		}
	}

	var copied []string
	if len(aliases) > 0 {
		copied = make([]string, len(aliases))
		copy(copied, aliases)
	}
	return Properties{
		kind:              kind,
		aliases:           copied,
		embedInteropTypes: embedInteropTypes,
	}, nil
}

// AssemblyProperties returns the canonical plain assembly reference:
// no aliases, no interop embedding.
func AssemblyProperties() Properties {
	return Properties{kind: KindAssembly}
}

// ModuleProperties returns the canonical plain module reference.
func ModuleProperties() Properties {
	return Properties{kind: KindModule}
}

// Kind returns what the reference points at.
func (p Properties) Kind() Kind { return p.kind }

// Aliases returns the extern aliases in insertion order. The result is
// never nil and is a copy; mutating it does not affect the receiver.
func (p Properties) Aliases() []string {
	out := make([]string, len(p.aliases))
	copy(out, p.aliases)
	return out
}

// EmbedInteropTypes reports whether interop types from the reference are
// embedded into the consumer rather than linked.
func (p Properties) EmbedInteropTypes() bool { return p.embedInteropTypes }

// WithAliases returns a copy of p carrying the new alias list. The copy is
// re-validated in full, so re-aliasing a module reference fails exactly
// like construction would.
func (p Properties) WithAliases(aliases []string) (Properties, error) {
	return NewProperties(p.kind, aliases, p.embedInteropTypes)
}

// WithEmbedInteropTypes returns a copy of p with the embed flag replaced,
// re-validated in full.
func (p Properties) WithEmbedInteropTypes(embed bool) (Properties, error) {
	return NewProperties(p.kind, p.aliases, embed)
}

// Equal reports whether two Properties are the same reference treatment:
// same kind, same embed flag, and the same aliases in the same order.
func (p Properties) Equal(o Properties) bool {
	if p.kind != o.kind || p.embedInteropTypes != o.embedInteropTypes {
		return false
	}
	if len(p.aliases) != len(o.aliases) {
		return false
	}
	for i, a := range p.aliases {
		if a != o.aliases[i] {
			return false
		}
	}
	return true
}

// Hash returns a deterministic digest of the value, consistent with Equal:
// equal values always hash equal.
func (p Properties) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	buf[0] = byte(p.kind)
	if p.embedInteropTypes {
		buf[1] = 1
	}
	d.Write(buf[:2])

	// Length-prefix each alias so ["ab"] and ["a","b"] digest differently.
	for _, a := range p.aliases {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(a)))
		d.Write(buf[:])
		d.WriteString(a)
	}
	return d.Sum64()
}

// String renders the value for logs and error messages.
func (p Properties) String() string {
	if len(p.aliases) == 0 && !p.embedInteropTypes {
		return p.kind.String()
	}
	return fmt.Sprintf("%s aliases=%v embed=%t", p.kind, p.aliases, p.embedInteropTypes)
}
