package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// aliasGen draws syntactically valid alias names.
func aliasGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z_][a-zA-Z0-9_]{0,10}`)
}

func propertiesGen() *rapid.Generator[Properties] {
	return rapid.Custom(func(rt *rapid.T) Properties {
		if rapid.Bool().Draw(rt, "module") {
			return ModuleProperties()
		}
		aliases := rapid.SliceOfN(aliasGen(), 0, 5).Draw(rt, "aliases")
		embed := rapid.Bool().Draw(rt, "embed")
		p, err := NewProperties(KindAssembly, aliases, embed)
		if err != nil {
			rt.Fatalf("generator produced invalid properties: %v", err)
		}
		return p
	})
}

func TestProperty_EqualityLaws(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := propertiesGen().Draw(rt, "a")
		b := propertiesGen().Draw(rt, "b")

		require.True(t, a.Equal(a), "reflexive")
		require.Equal(t, a.Equal(b), b.Equal(a), "symmetric")
		if a.Equal(b) {
			require.Equal(t, a.Hash(), b.Hash(), "equal values must hash equal")
		}
	})
}

func TestProperty_ValidityIsOrderInsensitive(t *testing.T) {
	// Permuting an otherwise-valid alias list never changes the outcome.
	rapid.Check(t, func(rt *rapid.T) {
		aliases := rapid.SliceOfN(aliasGen(), 1, 6).Draw(rt, "aliases")
		perm := rapid.Permutation(aliases).Draw(rt, "perm")

		_, err1 := NewProperties(KindAssembly, aliases, false)
		_, err2 := NewProperties(KindAssembly, perm, false)
		require.NoError(t, err1)
		require.NoError(t, err2)
	})
}

func TestProperty_DerivedCopiesNeverMutate(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		orig := propertiesGen().Draw(rt, "orig")
		kind := orig.Kind()
		aliases := orig.Aliases()
		embed := orig.EmbedInteropTypes()

		_, _ = orig.WithAliases(rapid.SliceOfN(aliasGen(), 0, 4).Draw(rt, "newAliases"))
		_, _ = orig.WithEmbedInteropTypes(rapid.Bool().Draw(rt, "newEmbed"))

		require.Equal(t, kind, orig.Kind())
		require.Equal(t, aliases, orig.Aliases())
		require.Equal(t, embed, orig.EmbedInteropTypes())
	})
}

func TestProperty_DerivedCopyRoundTrip(t *testing.T) {
	// A successful WithAliases carries the new aliases exactly and
	// leaves the other two fields alone.
	rapid.Check(t, func(rt *rapid.T) {
		embed := rapid.Bool().Draw(rt, "embed")
		orig, err := NewProperties(KindAssembly, nil, embed)
		require.NoError(t, err)

		aliases := rapid.SliceOfN(aliasGen(), 0, 5).Draw(rt, "aliases")
		next, err := orig.WithAliases(aliases)
		require.NoError(t, err)

		require.Equal(t, KindAssembly, next.Kind())
		require.Equal(t, embed, next.EmbedInteropTypes())
		require.Equal(t, append([]string{}, aliases...), next.Aliases())
	})
}
