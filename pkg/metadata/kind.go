package metadata

import "strings"

// Kind identifies what a metadata reference points at.
type Kind int

// Reference kinds.
const (
	// KindAssembly references a full assembly. Assemblies may be aliased
	// and may have their interop types embedded.
	KindAssembly Kind = iota
	// KindModule references a bare module. Modules cannot be aliased and
	// cannot embed interop types.
	KindModule
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAssembly:
		return "assembly"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// ParseKind converts a string to a Kind value.
// Returns the kind and true if valid, or KindAssembly and false if invalid.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "assembly":
		return KindAssembly, true
	case "module":
		return KindModule, true
	default:
		return KindAssembly, false
	}
}

// isRecognized reports whether k is one of the two declared kinds.
// Kind is an open integer type, so a caller can hand us any value.
func (k Kind) isRecognized() bool {
	return k == KindAssembly || k == KindModule
}
