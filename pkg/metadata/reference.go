package metadata

import "fmt"

// Reference is a configuration-level pointer from a compilation to an
// external compiled artifact it consumes: where the artifact lives plus
// how it is to be treated.
type Reference struct {
	// Path locates the referenced artifact.
	Path string
	// Properties describes how the reference is treated.
	Properties Properties
}

// NewReference validates and builds a Reference.
func NewReference(path string, props Properties) (Reference, error) {
	if path == "" {
		return Reference{}, &InvalidArgumentError{Name: "path", Reason: "reference path is empty"}
	}
	return Reference{Path: path, Properties: props}, nil
}

// Equal reports whether two references point at the same path with the
// same treatment.
func (r Reference) Equal(o Reference) bool {
	return r.Path == o.Path && r.Properties.Equal(o.Properties)
}

// String renders the reference for logs and diagnostics.
func (r Reference) String() string {
	return fmt.Sprintf("%s (%s)", r.Path, r.Properties)
}
