// Package refcheck provides the built-in analyzers over a compilation's
// reference set. Importing the package registers the analyzers with
// pkg/diagnostic's global registry:
//
//	import _ "github.com/refstack-labs/refstack/pkg/refcheck"
//
// The unit of analysis is []metadata.Reference.
package refcheck

import (
	"fmt"

	"github.com/refstack-labs/refstack/pkg/diagnostic"
	"github.com/refstack-labs/refstack/pkg/metadata"
)

func init() {
	diagnostic.Register(diagnostic.AnalyzerDef{
		ID:          "RC01",
		Name:        "references.duplicate-alias",
		Description: "the same extern alias is declared by more than one reference",
		Severity:    diagnostic.SeverityWarning,
		Check:       checkDuplicateAlias,
	})
	diagnostic.Register(diagnostic.AnalyzerDef{
		ID:          "RC02",
		Name:        "references.explicit-global-alias",
		Description: "the reserved global alias is supplied explicitly; it is always implicitly available",
		Severity:    diagnostic.SeverityHint,
		Check:       checkExplicitGlobal,
	})
	diagnostic.Register(diagnostic.AnalyzerDef{
		ID:          "RC03",
		Name:        "references.conflicting-duplicate",
		Description: "the same artifact is referenced twice with different treatment",
		Severity:    diagnostic.SeverityWarning,
		Check:       checkConflictingDuplicate,
	})
}

// References extracts the unit. Analyzers tolerate foreign units by
// reporting nothing, matching the registry-runner contract.
func references(unit any) []metadata.Reference {
	refs, _ := unit.([]metadata.Reference)
	return refs
}

func checkDuplicateAlias(unit any, _ map[string]any) []diagnostic.Diagnostic {
	seen := make(map[string]string) // alias -> first declaring path
	var diags []diagnostic.Diagnostic
	for _, ref := range references(unit) {
		for _, alias := range ref.Properties.Aliases() {
			first, ok := seen[alias]
			if !ok {
				seen[alias] = ref.Path
				continue
			}
			if first == ref.Path {
				continue
			}
			diags = append(diags, diagnostic.Diagnostic{
				AnalyzerID: "RC01",
				Severity:   diagnostic.SeverityWarning,
				Message:    fmt.Sprintf("alias %q is declared by both %s and %s", alias, first, ref.Path),
			})
		}
	}
	return diags
}

func checkExplicitGlobal(unit any, _ map[string]any) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, ref := range references(unit) {
		for _, alias := range ref.Properties.Aliases() {
			if alias == metadata.GlobalAlias {
				diags = append(diags, diagnostic.Diagnostic{
					AnalyzerID: "RC02",
					Severity:   diagnostic.SeverityHint,
					Message:    fmt.Sprintf("%s declares the %q alias explicitly; the global scope is always available", ref.Path, metadata.GlobalAlias),
				})
			}
		}
	}
	return diags
}

func checkConflictingDuplicate(unit any, _ map[string]any) []diagnostic.Diagnostic {
	firstByPath := make(map[string]metadata.Reference)
	reported := make(map[string]bool)
	var diags []diagnostic.Diagnostic
	for _, ref := range references(unit) {
		first, ok := firstByPath[ref.Path]
		if !ok {
			firstByPath[ref.Path] = ref
			continue
		}
		if first.Properties.Equal(ref.Properties) || reported[ref.Path] {
			continue
		}
		reported[ref.Path] = true
		diags = append(diags, diagnostic.Diagnostic{
			AnalyzerID: "RC03",
			Severity:   diagnostic.SeverityWarning,
			Message:    fmt.Sprintf("%s is referenced more than once with different treatment (%s vs %s)", ref.Path, first.Properties, ref.Properties),
		})
	}
	return diags
}
