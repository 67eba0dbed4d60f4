package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperties_Defaults(t *testing.T) {
	for _, kind := range []Kind{KindAssembly, KindModule} {
		t.Run(kind.String(), func(t *testing.T) {
			p, err := NewProperties(kind, nil, false)
			require.NoError(t, err)

			assert.Equal(t, kind, p.Kind())
			assert.False(t, p.EmbedInteropTypes())
			assert.NotNil(t, p.Aliases(), "aliases must never be absent")
			assert.Empty(t, p.Aliases())
		})
	}
}

func TestNewProperties_UnrecognizedKind(t *testing.T) {
	_, err := NewProperties(Kind(42), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "kind", argErr.Name)
}

func TestNewProperties_ModuleCannotEmbed(t *testing.T) {
	_, err := NewProperties(KindModule, nil, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "embedInteropTypes", argErr.Name)
}

func TestNewProperties_ModuleCannotAlias(t *testing.T) {
	_, err := NewProperties(KindModule, []string{"lib"}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "aliases", argErr.Name)
}

func TestNewProperties_EmbedBeatsAliasCheck(t *testing.T) {
	// Both rules are violated; the embed rule is reported first.
	_, err := NewProperties(KindModule, []string{"lib"}, true)
	require.Error(t, err)

	var argErr *InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "embedInteropTypes", argErr.Name)
}

func TestNewProperties_InvalidAlias(t *testing.T) {
	cases := []string{"1bad", "", "has space", "a-b", "x.y"}
	for _, alias := range cases {
		t.Run(alias, func(t *testing.T) {
			_, err := NewProperties(KindAssembly, []string{"ok", alias}, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var argErr *InvalidArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, "aliases", argErr.Name)
		})
	}
}

func TestNewProperties_ValidAliases(t *testing.T) {
	p, err := NewProperties(KindAssembly, []string{"lib", "_x", "日本語", "v2"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib", "_x", "日本語", "v2"}, p.Aliases())
	assert.True(t, p.EmbedInteropTypes())
}

func TestNewProperties_CopiesAliasInput(t *testing.T) {
	in := []string{"a", "b"}
	p, err := NewProperties(KindAssembly, in, false)
	require.NoError(t, err)

	in[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Aliases())

	out := p.Aliases()
	out[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Aliases())
}

func TestPresets(t *testing.T) {
	asm := AssemblyProperties()
	assert.Equal(t, KindAssembly, asm.Kind())
	assert.Empty(t, asm.Aliases())
	assert.False(t, asm.EmbedInteropTypes())

	mod := ModuleProperties()
	assert.Equal(t, KindModule, mod.Kind())
	assert.Empty(t, mod.Aliases())
	assert.False(t, mod.EmbedInteropTypes())

	assert.NotEqual(t, asm.Hash(), mod.Hash(), "canonical presets must not collide")
}

func TestWithAliases(t *testing.T) {
	orig := AssemblyProperties()

	p, err := orig.WithAliases([]string{GlobalAlias})
	require.NoError(t, err)
	assert.Equal(t, []string{"global"}, p.Aliases())

	// Receiver is untouched.
	assert.Empty(t, orig.Aliases())
}

func TestWithAliases_ModuleStillFails(t *testing.T) {
	_, err := ModuleProperties().WithAliases([]string{"lib"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithEmbedInteropTypes(t *testing.T) {
	orig, err := NewProperties(KindAssembly, []string{"interop"}, false)
	require.NoError(t, err)

	p, err := orig.WithEmbedInteropTypes(true)
	require.NoError(t, err)
	assert.True(t, p.EmbedInteropTypes())
	assert.Equal(t, []string{"interop"}, p.Aliases())

	assert.False(t, orig.EmbedInteropTypes(), "receiver must not change")
}

func TestWithEmbedInteropTypes_ModuleFails(t *testing.T) {
	_, err := ModuleProperties().WithEmbedInteropTypes(true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEqual_OrderSensitive(t *testing.T) {
	ab, err := NewProperties(KindAssembly, []string{"a", "b"}, false)
	require.NoError(t, err)
	ba, err := NewProperties(KindAssembly, []string{"b", "a"}, false)
	require.NoError(t, err)

	assert.False(t, ab.Equal(ba), "alias order is significant")
	assert.False(t, ba.Equal(ab))

	ab2, err := NewProperties(KindAssembly, []string{"a", "b"}, false)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ab2))
	assert.Equal(t, ab.Hash(), ab2.Hash())
}

func TestEqual_DistinguishesEveryField(t *testing.T) {
	base, err := NewProperties(KindAssembly, []string{"a"}, false)
	require.NoError(t, err)

	embedded, err := base.WithEmbedInteropTypes(true)
	require.NoError(t, err)
	assert.False(t, base.Equal(embedded))

	assert.False(t, AssemblyProperties().Equal(ModuleProperties()))
}

func TestHash_AliasBoundaries(t *testing.T) {
	joined, err := NewProperties(KindAssembly, []string{"ab"}, false)
	require.NoError(t, err)
	split, err := NewProperties(KindAssembly, []string{"a", "b"}, false)
	require.NoError(t, err)

	assert.NotEqual(t, joined.Hash(), split.Hash())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("assembly")
	assert.True(t, ok)
	assert.Equal(t, KindAssembly, k)

	k, ok = ParseKind("Module")
	assert.True(t, ok)
	assert.Equal(t, KindModule, k)

	_, ok = ParseKind("netmodule")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "assembly", KindAssembly.String())
	assert.Equal(t, "module", KindModule.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
