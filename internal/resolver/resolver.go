// Package resolver implements the reference-resolution pipeline: it takes
// a compilation's configured references and decides in which alias scopes
// each referenced artifact's symbols surface.
package resolver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/refstack-labs/refstack/pkg/diagnostic"
	"github.com/refstack-labs/refstack/pkg/metadata"
	"github.com/refstack-labs/refstack/pkg/probe"
)

// MissingArtifactID is the analyzer ID attached to missing-artifact
// diagnostics produced by the pipeline itself.
const MissingArtifactID = "RS01"

// Artifact is a resolved referenced artifact as surfaced in a scope.
type Artifact struct {
	Path              string
	Kind              metadata.Kind
	EmbedInteropTypes bool
}

// Result is the outcome of resolving a reference set.
type Result struct {
	// Scopes maps an alias name to the artifacts surfaced under it.
	// The metadata.GlobalAlias key holds the default declaration space.
	Scopes map[string][]Artifact
	// Diagnostics collects non-fatal findings (missing artifacts).
	Diagnostics []diagnostic.Diagnostic
	// TouchedPaths lists every path the run probed, in first-touch order.
	TouchedPaths []string
}

// ScopeNames returns the scope names in sorted order, global first.
func (r *Result) ScopeNames() []string {
	names := make([]string, 0, len(r.Scopes))
	for name := range r.Scopes {
		if name != metadata.GlobalAlias {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := r.Scopes[metadata.GlobalAlias]; ok {
		names = append([]string{metadata.GlobalAlias}, names...)
	}
	return names
}

// Resolver resolves references against the file system.
type Resolver struct {
	fs     probe.FileProbe
	logger *slog.Logger
}

// New creates a resolver probing through fs. A nil logger discards logs.
func New(fs probe.FileProbe, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Resolver{fs: fs, logger: logger}
}

// Resolve probes every reference and builds the alias scope map.
//
// Scoping rules:
//   - a reference with no aliases surfaces in the global scope only;
//   - a reference with aliases surfaces in each named alias scope and
//     not in the global scope, unless the reserved global alias is
//     among them;
//   - module references always surface globally (they cannot be aliased).
//
// A missing artifact produces a diagnostic and is skipped; it never
// aborts the run. Wrap fs in a probe.Recorder before calling New to get
// TouchedPaths populated; with a plain probe TouchedPaths is nil.
func (r *Resolver) Resolve(ctx context.Context, refs []metadata.Reference) (*Result, error) {
	result := &Result{Scopes: make(map[string][]Artifact)}

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !r.fs.Exists(ref.Path) {
			r.logger.Warn("referenced artifact not found", "path", ref.Path)
			result.Diagnostics = append(result.Diagnostics, diagnostic.Diagnostic{
				AnalyzerID: MissingArtifactID,
				Severity:   diagnostic.SeverityError,
				Message:    fmt.Sprintf("referenced artifact %s does not exist", ref.Path),
			})
			continue
		}

		artifact := Artifact{
			Path:              ref.Path,
			Kind:              ref.Properties.Kind(),
			EmbedInteropTypes: ref.Properties.EmbedInteropTypes(),
		}

		aliases := ref.Properties.Aliases()
		if len(aliases) == 0 {
			r.addToScope(result, metadata.GlobalAlias, artifact)
			continue
		}
		for _, alias := range aliases {
			r.addToScope(result, alias, artifact)
		}
	}

	if rec, ok := r.fs.(*probe.Recorder); ok {
		result.TouchedPaths = rec.Paths()
	}

	r.logger.Debug("resolution complete",
		"references", len(refs),
		"scopes", len(result.Scopes),
		"diagnostics", len(result.Diagnostics))
	return result, nil
}

// addToScope appends the artifact to a scope, collapsing duplicates.
func (r *Resolver) addToScope(result *Result, scope string, artifact Artifact) {
	for _, existing := range result.Scopes[scope] {
		if existing == artifact {
			return
		}
	}
	result.Scopes[scope] = append(result.Scopes[scope], artifact)
}
