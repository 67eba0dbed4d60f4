package diagnostic

import "fmt"

// Span is a half-open rune-offset range [Start, End) over the analyzed
// unit's text. The zero Span means "the whole unit".
type Span struct {
	Start int
	End   int
}

// IsZero reports whether the span is the whole-unit span.
func (s Span) IsZero() bool { return s.Start == 0 && s.End == 0 }

// Source is an in-memory unit of analysis: a named blob of text.
type Source struct {
	// Name identifies the unit, usually a file path.
	Name string
	// Text is the full content.
	Text string
}

// FullSpan returns the span covering all of the source text.
func (s Source) FullSpan() Span {
	return Span{Start: 0, End: len([]rune(s.Text))}
}

// Diagnostic is a single analyzer finding.
type Diagnostic struct {
	// AnalyzerID is the unique identifier of the reporting analyzer,
	// e.g. "RC01".
	AnalyzerID string
	Severity   Severity
	Message    string
	Span       Span
}

// String renders the diagnostic in the canonical one-line form used by
// CLI output and verification mismatch reports.
func (d Diagnostic) String() string {
	if d.Span.IsZero() {
		return fmt.Sprintf("%s [%s]: %s", d.Severity, d.AnalyzerID, d.Message)
	}
	return fmt.Sprintf("%s [%s] %d..%d: %s", d.Severity, d.AnalyzerID, d.Span.Start, d.Span.End, d.Message)
}

// AnalyzerDef is a data-driven analyzer definition. Analyzers are
// stateless; all context arrives through the Check function parameters.
// The unit parameter is passed as `any` to avoid import cycles between
// this package and the packages defining unit types.
type AnalyzerDef struct {
	// ID is the unique identifier, e.g. "RC01".
	ID string
	// Name is the human-readable name, e.g. "references.duplicate-alias".
	Name string
	// Description explains what the analyzer reports.
	Description string
	// Severity is the default severity for findings.
	Severity Severity
	// Check analyzes a unit and returns diagnostics.
	Check CheckFunc
}

// CheckFunc analyzes a unit and returns diagnostics. The opts parameter
// carries analyzer-specific options from configuration.
type CheckFunc func(unit any, opts map[string]any) []Diagnostic
