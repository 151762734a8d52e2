package mirror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneOK(t *testing.T, m *Method) string {
	t.Helper()
	decl, err := CloneFunctionDeclaration(m)
	require.NoError(t, err)
	return decl
}

func TestCloneFunctionDeclaration_Plain(t *testing.T) {
	m := &Method{
		Name:   "getUser",
		Return: AggregateType(KindStruct, "app.model", "User"),
		Params: []Parameter{{Name: "id", Type: Primitive("int")}},
	}
	assert.Equal(t, "app.model.User getUser(int id)", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_Attributes(t *testing.T) {
	m := &Method{
		Name:       "count",
		Return:     Primitive("int"),
		Attributes: AttrPure | AttrNothrow | AttrProperty | AttrSafe,
	}
	assert.Equal(t, "pure nothrow @property @safe int count()", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_RefReturnAndTrusted(t *testing.T) {
	m := &Method{
		Name:       "buffer",
		Return:     DynamicArrayOf(Primitive("ubyte")),
		Attributes: AttrRefReturn | AttrTrusted,
	}
	assert.Equal(t, "ref @trusted ubyte[] buffer()", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_ForeignLinkage(t *testing.T) {
	m := &Method{
		Name:    "handle",
		Return:  Primitive("int"),
		Linkage: LinkageC,
	}
	assert.Equal(t, "extern (C) int handle()", cloneOK(t, m))

	m.Linkage = LinkageWindows
	assert.Equal(t, "extern (Windows) int handle()", cloneOK(t, m))

	// native linkage emits no prefix
	m.Linkage = LinkageNative
	assert.Equal(t, "int handle()", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_StorageClasses(t *testing.T) {
	m := &Method{
		Name:   "fill",
		Return: Void,
		Params: []Parameter{
			{Name: "dst", Type: DynamicArrayOf(Primitive("ubyte")), Storage: StorageRef},
			{Name: "n", Type: Primitive("int"), Storage: StorageOut},
			{Name: "src", Type: Primitive("string"), Storage: StorageScope | StorageLazy},
		},
	}
	assert.Equal(t, "void fill(ref ubyte[] dst, out int n, scope lazy string src)", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_UnnamedParameter(t *testing.T) {
	m := &Method{
		Name:   "accept",
		Return: Void,
		Params: []Parameter{{Type: Primitive("int")}},
	}
	assert.Equal(t, "void accept(int)", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_VariadicStyles(t *testing.T) {
	base := func(params ...Parameter) *Method {
		return &Method{Name: "log", Return: Void, Params: params}
	}
	strParam := Parameter{Name: "fmt", Type: Primitive("string")}

	m := base(strParam)
	m.Variadic = VariadicC
	assert.Equal(t, "void log(string fmt, ...)", cloneOK(t, m))

	m = base(strParam)
	m.Variadic = VariadicNative
	assert.Equal(t, "void log(string fmt, ...)", cloneOK(t, m))

	m = base()
	m.Variadic = VariadicNative
	assert.Equal(t, "void log(...)", cloneOK(t, m))

	m = base(Parameter{Name: "args", Type: DynamicArrayOf(Primitive("string"))})
	m.Variadic = VariadicTypesafe
	assert.Equal(t, "void log(string[] args ...)", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_Qualifiers(t *testing.T) {
	m := &Method{Name: "peek", Return: Primitive("int")}

	m.Qualifiers = QualifierConst
	assert.Equal(t, "int peek() const", cloneOK(t, m))

	m.Qualifiers = QualifierImmutable
	assert.Equal(t, "int peek() immutable", cloneOK(t, m))

	m.Qualifiers = QualifierInout
	assert.Equal(t, "int peek() inout", cloneOK(t, m))

	m.Qualifiers = QualifierShared
	assert.Equal(t, "shared(int peek())", cloneOK(t, m))

	// shared wraps first, the remaining qualifier follows
	m.Qualifiers = QualifierShared | QualifierConst
	assert.Equal(t, "shared(int peek()) const", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_ComplexTypes(t *testing.T) {
	user := AggregateType(KindClass, "app.model", "User")
	m := &Method{
		Name:   "index",
		Return: AssocArrayOf(Primitive("string"), DynamicArrayOf(user)),
		Params: []Parameter{
			{Name: "seed", Type: StaticArrayOf(Primitive("ubyte"), 16)},
			{Name: "prev", Type: PointerTo(user)},
		},
	}
	assert.Equal(t, "app.model.User[][string] index(ubyte[16] seed, app.model.User* prev)", cloneOK(t, m))
}

func TestCloneFunctionDeclaration_UnsupportedSymbolKind(t *testing.T) {
	for _, kind := range []SymbolKind{SymbolDelegate, SymbolFunctionPointer} {
		m := &Method{Name: "cb", Return: Void, Symbol: kind}

		_, err := CloneFunctionDeclaration(m)
		require.Error(t, err)

		var unsupported *UnsupportedSymbolKindError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, kind, unsupported.Kind)
	}
}

func TestBuildSignature_Structure(t *testing.T) {
	m := &Method{
		Name:       "load",
		Return:     AggregateType(KindStruct, "app.model", "User"),
		Params:     []Parameter{{Name: "id", Type: Primitive("long"), Storage: StorageScope}},
		Attributes: AttrNothrow,
		Qualifiers: QualifierConst,
	}

	sig, err := BuildSignature(m)
	require.NoError(t, err)
	assert.Empty(t, sig.Linkage)
	assert.Equal(t, []string{"nothrow"}, sig.Attributes)
	assert.Equal(t, "app.model.User", sig.Return)
	require.Len(t, sig.Params, 1)
	assert.Equal(t, []string{"scope"}, sig.Params[0].Storage)
	assert.Equal(t, "long", sig.Params[0].Type)
}
