package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectNameableTypes_ArraysUnwrapToElement(t *testing.T) {
	inner := AggregateType(KindStruct, "app.model", "Inner")

	for name, typ := range map[string]*Type{
		"bare":          inner,
		"static array":  StaticArrayOf(inner, 4),
		"dynamic array": DynamicArrayOf(inner),
		"pointer":       PointerTo(inner),
		"reference":     RefTo(inner),
		"nested":        DynamicArrayOf(PointerTo(inner)),
	} {
		got := CollectNameableTypes(typ)
		require.Len(t, got, 1, "case %s", name)
		assert.Same(t, inner, got[0], "case %s", name)
	}
}

func TestCollectNameableTypes_AssocArrayValueThenKey(t *testing.T) {
	key := AggregateType(KindStruct, "app.model", "Key")
	value := AggregateType(KindStruct, "app.model", "Value")

	got := CollectNameableTypes(AssocArrayOf(key, value))
	require.Len(t, got, 2)
	assert.Same(t, value, got[0])
	assert.Same(t, key, got[1])
}

func TestCollectNameableTypes_SelfMap(t *testing.T) {
	inner := AggregateType(KindStruct, "app.model", "Inner")

	// Inner[Inner] yields the element twice, value side first
	got := CollectNameableTypes(AssocArrayOf(inner, inner))
	require.Len(t, got, 2)
	assert.Same(t, inner, got[0])
	assert.Same(t, inner, got[1])
}

func TestCollectNameableTypes_PrimitivesYieldNothing(t *testing.T) {
	assert.Empty(t, CollectNameableTypes(Primitive("int")))
	assert.Empty(t, CollectNameableTypes(DynamicArrayOf(Primitive("string"))))
	assert.Empty(t, CollectNameableTypes(nil))
}

func TestCollectNameableTypes_EnumYieldsItself(t *testing.T) {
	color := AggregateType(KindEnum, "app.model", "Color")

	got := CollectNameableTypes(StaticArrayOf(color, 3))
	require.Len(t, got, 1)
	assert.Same(t, color, got[0])
}

func TestCollectNameableTypes_MixedMap(t *testing.T) {
	user := AggregateType(KindClass, "app.model", "User")

	// User[string]: primitive key contributes nothing
	got := CollectNameableTypes(AssocArrayOf(Primitive("string"), user))
	require.Len(t, got, 1)
	assert.Same(t, user, got[0])
}
