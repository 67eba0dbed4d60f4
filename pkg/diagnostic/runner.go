package diagnostic

import "sort"

// Config controls which analyzers run and at what severity.
type Config struct {
	// DisabledAnalyzers contains analyzer IDs to skip.
	DisabledAnalyzers map[string]bool

	// SeverityOverrides changes the default severity of analyzers.
	SeverityOverrides map[string]Severity

	// Options holds analyzer-specific options, keyed by analyzer ID.
	Options map[string]map[string]any
}

// NewConfig creates a default configuration with every analyzer enabled.
func NewConfig() *Config {
	return &Config{
		DisabledAnalyzers: make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		Options:           make(map[string]map[string]any),
	}
}

// IsDisabled returns true if the analyzer should be skipped.
func (c *Config) IsDisabled(id string) bool {
	if c == nil {
		return false
	}
	return c.DisabledAnalyzers[id]
}

// GetSeverity returns the severity for an analyzer, applying any override.
func (c *Config) GetSeverity(id string, def Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[id]; ok {
			return sev
		}
	}
	return def
}

// GetOptions returns analyzer-specific options, or nil if none were set.
func (c *Config) GetOptions(id string) map[string]any {
	if c == nil {
		return nil
	}
	return c.Options[id]
}

// Disable disables an analyzer by ID.
func (c *Config) Disable(id string) *Config {
	c.DisabledAnalyzers[id] = true
	return c
}

// SetSeverity overrides the severity for an analyzer.
func (c *Config) SetSeverity(id string, severity Severity) *Config {
	c.SeverityOverrides[id] = severity
	return c
}

// Runner runs analyzers over a unit of analysis.
type Runner struct {
	config    *Config
	analyzers []AnalyzerDef
}

// NewRunner creates a runner over an explicit analyzer set.
// A nil config means all analyzers enabled at default severity.
func NewRunner(config *Config, analyzers []AnalyzerDef) *Runner {
	if config == nil {
		config = NewConfig()
	}
	return &Runner{config: config, analyzers: analyzers}
}

// NewRegistryRunner creates a runner over every registered analyzer.
func NewRegistryRunner(config *Config) *Runner {
	return NewRunner(config, All())
}

// Run executes every enabled analyzer against the unit and returns the
// combined findings, sorted by span start, then span end, then analyzer
// ID, so output is deterministic across runs.
func (r *Runner) Run(unit any) []Diagnostic {
	if unit == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, def := range r.analyzers {
		if r.config.IsDisabled(def.ID) {
			continue
		}
		opts := r.config.GetOptions(def.ID)
		diags := def.Check(unit, opts)
		for i := range diags {
			diags[i].Severity = r.config.GetSeverity(def.ID, diags[i].Severity)
		}
		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		a, b := diagnostics[i], diagnostics[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.AnalyzerID < b.AnalyzerID
	})
	return diagnostics
}

// HasSeverity reports whether any diagnostic in diags is at least as
// severe as min (Error is the most severe level).
func HasSeverity(diags []Diagnostic, min Severity) bool {
	for _, d := range diags {
		if d.Severity <= min {
			return true
		}
	}
	return false
}
