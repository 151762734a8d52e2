package typeexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/mirror/internal/errors"
	"github.com/toyz/mirror/internal/registry"
	"github.com/toyz/mirror/pkg/mirror"
)

func testRegistry(t *testing.T) *registry.TypeRegistry {
	t.Helper()
	reg := registry.NewTypeRegistry()
	require.NoError(t, reg.Register(mirror.AggregateType(mirror.KindStruct, "app.model", "User"), errors.SourceLocation{}))
	require.NoError(t, reg.Register(mirror.AggregateType(mirror.KindEnum, "app.model", "Color"), errors.SourceLocation{}))
	return reg
}

func TestResolve_Primitives(t *testing.T) {
	parser := NewParser()
	reg := testRegistry(t)

	typ, err := parser.Resolve("int", reg)
	require.NoError(t, err)
	assert.Equal(t, mirror.KindPrimitive, typ.Kind)
	assert.Equal(t, "int", typ.Name)
}

func TestResolve_QualifiedAndBareNames(t *testing.T) {
	parser := NewParser()
	reg := testRegistry(t)

	qualified, err := parser.Resolve("app.model.User", reg)
	require.NoError(t, err)
	assert.Equal(t, "app.model.User", qualified.FullName())

	// bare name resolves while unambiguous
	bare, err := parser.Resolve("User", reg)
	require.NoError(t, err)
	assert.Equal(t, "app.model.User", bare.FullName())
}

func TestResolve_Suffixes(t *testing.T) {
	parser := NewParser()
	reg := testRegistry(t)

	cases := map[string]string{
		"User[]":        "app.model.User[]",
		"ubyte[16]":     "ubyte[16]",
		"User[string]":  "app.model.User[string]",
		"User*":         "app.model.User*",
		"User[]*":       "app.model.User[]*",
		"User[Color]":   "app.model.User[app.model.Color]",
		"int[string][]": "int[string][]",
	}
	for expr, want := range cases {
		typ, err := parser.Resolve(expr, reg)
		require.NoError(t, err, "expression %s", expr)
		assert.Equal(t, want, typ.String(), "expression %s", expr)
	}
}

func TestResolve_AssocArraySides(t *testing.T) {
	parser := NewParser()
	reg := testRegistry(t)

	typ, err := parser.Resolve("User[Color]", reg)
	require.NoError(t, err)
	require.Equal(t, mirror.KindAssocArray, typ.Kind)
	assert.Equal(t, "User", typ.Elem.Name)
	assert.Equal(t, "Color", typ.Key.Name)
}

func TestResolve_UnknownType(t *testing.T) {
	parser := NewParser()
	reg := testRegistry(t)

	_, err := parser.Resolve("Missing[]", reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "Missing"`)
}

func TestResolve_SyntaxError(t *testing.T) {
	parser := NewParser()
	reg := testRegistry(t)

	for _, expr := range []string{"", "[]", "User[", "User]"} {
		_, err := parser.Resolve(expr, reg)
		assert.Error(t, err, "expression %q", expr)
	}
}
