// Package config loads the refstack project manifest. It is decoupled
// from CLI concerns so other tools can load the same configuration.
package config

import (
	"fmt"

	"github.com/refstack-labs/refstack/pkg/metadata"
)

// Manifest is the on-disk configuration for a refstack project.
type Manifest struct {
	// Output selects the default output format: text or json.
	Output string `koanf:"output"`

	// References lists the compilation's metadata references.
	References []ReferenceConfig `koanf:"references"`

	// Check configures the analyzers run by `refstack check`.
	Check CheckConfig `koanf:"check"`
}

// ReferenceConfig is one reference entry in the manifest.
type ReferenceConfig struct {
	// Path locates the referenced artifact.
	Path string `koanf:"path"`

	// Kind is "assembly" or "module". Defaults to "assembly".
	Kind string `koanf:"kind"`

	// Aliases are the extern aliases, in declaration order.
	Aliases []string `koanf:"aliases"`

	// EmbedInteropTypes embeds the reference's interop types instead of
	// linking them.
	EmbedInteropTypes bool `koanf:"embed_interop_types"`
}

// CheckConfig holds analyzer configuration.
type CheckConfig struct {
	// Disabled contains analyzer IDs to disable.
	Disabled []string `koanf:"disabled"`

	// Severity maps analyzer ID to severity override (error, warning, info, hint).
	Severity map[string]string `koanf:"severity"`
}

// ApplyDefaults fills unset fields.
func (m *Manifest) ApplyDefaults() {
	if m.Output == "" {
		m.Output = "text"
	}
	for i := range m.References {
		if m.References[i].Kind == "" {
			m.References[i].Kind = metadata.KindAssembly.String()
		}
	}
}

// Resolve converts the manifest entries into validated references. Any
// invalid entry fails the whole conversion with the offending path named.
func (m *Manifest) Resolve() ([]metadata.Reference, error) {
	refs := make([]metadata.Reference, 0, len(m.References))
	for _, rc := range m.References {
		ref, err := rc.Resolve()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Resolve validates one manifest entry against the metadata rules.
func (rc ReferenceConfig) Resolve() (metadata.Reference, error) {
	kind, ok := metadata.ParseKind(rc.Kind)
	if !ok {
		return metadata.Reference{}, fmt.Errorf("reference %q: unknown kind %q", rc.Path, rc.Kind)
	}
	props, err := metadata.NewProperties(kind, rc.Aliases, rc.EmbedInteropTypes)
	if err != nil {
		return metadata.Reference{}, fmt.Errorf("reference %q: %w", rc.Path, err)
	}
	ref, err := metadata.NewReference(rc.Path, props)
	if err != nil {
		return metadata.Reference{}, fmt.Errorf("reference %q: %w", rc.Path, err)
	}
	return ref, nil
}
