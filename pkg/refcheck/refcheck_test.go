package refcheck

import (
	"testing"

	"github.com/refstack-labs/refstack/pkg/diagnostic"
	"github.com/refstack-labs/refstack/pkg/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRef(t *testing.T, path string, kind metadata.Kind, aliases []string, embed bool) metadata.Reference {
	t.Helper()
	props, err := metadata.NewProperties(kind, aliases, embed)
	require.NoError(t, err)
	ref, err := metadata.NewReference(path, props)
	require.NoError(t, err)
	return ref
}

func runAll(refs []metadata.Reference) []diagnostic.Diagnostic {
	return diagnostic.NewRegistryRunner(nil).Run(refs)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"RC01", "RC02", "RC03"} {
		_, ok := diagnostic.Get(id)
		assert.True(t, ok, "analyzer %s must be registered on import", id)
	}
}

func TestDuplicateAlias(t *testing.T) {
	refs := []metadata.Reference{
		mustRef(t, "lib/a.dll", metadata.KindAssembly, []string{"util"}, false),
		mustRef(t, "lib/b.dll", metadata.KindAssembly, []string{"util"}, false),
	}

	diags := runAll(refs)
	require.Len(t, diags, 1)
	assert.Equal(t, "RC01", diags[0].AnalyzerID)
	assert.Equal(t, diagnostic.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, `alias "util"`)
	assert.Contains(t, diags[0].Message, "lib/a.dll")
	assert.Contains(t, diags[0].Message, "lib/b.dll")
}

func TestDuplicateAlias_SamePathNotReported(t *testing.T) {
	refs := []metadata.Reference{
		mustRef(t, "lib/a.dll", metadata.KindAssembly, []string{"util"}, false),
		mustRef(t, "lib/a.dll", metadata.KindAssembly, []string{"util"}, false),
	}
	assert.Empty(t, runAll(refs))
}

func TestExplicitGlobalAlias(t *testing.T) {
	refs := []metadata.Reference{
		mustRef(t, "lib/a.dll", metadata.KindAssembly, []string{metadata.GlobalAlias}, false),
	}

	diags := runAll(refs)
	require.Len(t, diags, 1)
	assert.Equal(t, "RC02", diags[0].AnalyzerID)
	assert.Equal(t, diagnostic.SeverityHint, diags[0].Severity)
}

func TestConflictingDuplicate(t *testing.T) {
	refs := []metadata.Reference{
		mustRef(t, "lib/a.dll", metadata.KindAssembly, nil, false),
		mustRef(t, "lib/a.dll", metadata.KindAssembly, nil, true),
		mustRef(t, "lib/a.dll", metadata.KindAssembly, nil, true), // reported once
	}

	diags := runAll(refs)
	require.Len(t, diags, 1)
	assert.Equal(t, "RC03", diags[0].AnalyzerID)
	assert.Contains(t, diags[0].Message, "lib/a.dll")
}

func TestCleanManifest(t *testing.T) {
	refs := []metadata.Reference{
		mustRef(t, "lib/a.dll", metadata.KindAssembly, []string{"a"}, false),
		mustRef(t, "lib/b.dll", metadata.KindAssembly, []string{"b"}, true),
		mustRef(t, "lib/c.netmodule", metadata.KindModule, nil, false),
	}
	assert.Empty(t, runAll(refs))
}

func TestForeignUnitIgnored(t *testing.T) {
	assert.Empty(t, runAll(nil))
	assert.Empty(t, diagnostic.NewRegistryRunner(nil).Run("not a reference set"))
}
