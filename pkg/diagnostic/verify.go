package diagnostic

import (
	"fmt"
	"strings"
)

// Verify runs the runner against the unit and checks the resulting
// diagnostics against the expected list, comparing count, order and every
// field. It returns nil on an exact match and a descriptive error naming
// the first divergence otherwise.
//
// Expected diagnostics are compared after the runner's own sorting, so
// callers list them in span order.
func Verify(r *Runner, unit any, expected []Diagnostic) error {
	actual := r.Run(unit)

	if len(actual) != len(expected) {
		return fmt.Errorf("diagnostic count mismatch: expected %d, got %d\nexpected:\n%s\nactual:\n%s",
			len(expected), len(actual), formatDiagnostics(expected), formatDiagnostics(actual))
	}

	for i := range expected {
		if err := compareDiagnostic(i, expected[i], actual[i]); err != nil {
			return err
		}
	}
	return nil
}

func compareDiagnostic(i int, want, got Diagnostic) error {
	switch {
	case want.AnalyzerID != got.AnalyzerID:
		return fmt.Errorf("diagnostic %d: expected analyzer %q, got %q", i, want.AnalyzerID, got.AnalyzerID)
	case want.Severity != got.Severity:
		return fmt.Errorf("diagnostic %d (%s): expected severity %s, got %s", i, want.AnalyzerID, want.Severity, got.Severity)
	case want.Span != got.Span:
		return fmt.Errorf("diagnostic %d (%s): expected span %d..%d, got %d..%d",
			i, want.AnalyzerID, want.Span.Start, want.Span.End, got.Span.Start, got.Span.End)
	case want.Message != got.Message:
		return fmt.Errorf("diagnostic %d (%s): expected message %q, got %q", i, want.AnalyzerID, want.Message, got.Message)
	}
	return nil
}

func formatDiagnostics(diags []Diagnostic) string {
	if len(diags) == 0 {
		return "  (none)"
	}
	var b strings.Builder
	for _, d := range diags {
		b.WriteString("  ")
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
