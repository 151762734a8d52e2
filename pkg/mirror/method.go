package mirror

// StorageClass is a set of parameter storage-class flags
type StorageClass uint

const (
	StorageScope StorageClass = 1 << iota
	StorageOut
	StorageRef
	StorageLazy
)

// Has reports whether all flags in sc are set
func (s StorageClass) Has(sc StorageClass) bool {
	return s&sc == sc
}

// Tokens returns the storage-class keywords in their fixed emission order
func (s StorageClass) Tokens() []string {
	var tokens []string
	if s.Has(StorageScope) {
		tokens = append(tokens, "scope")
	}
	if s.Has(StorageOut) {
		tokens = append(tokens, "out")
	}
	if s.Has(StorageRef) {
		tokens = append(tokens, "ref")
	}
	if s.Has(StorageLazy) {
		tokens = append(tokens, "lazy")
	}
	return tokens
}

// FuncAttribute is a set of function attribute flags
type FuncAttribute uint

const (
	AttrPure FuncAttribute = 1 << iota
	AttrNothrow
	AttrRefReturn
	AttrProperty
	AttrTrusted
	AttrSafe
)

// Has reports whether all flags in fa are set
func (a FuncAttribute) Has(fa FuncAttribute) bool {
	return a&fa == fa
}

// Tokens returns the attribute keywords in their fixed emission order
func (a FuncAttribute) Tokens() []string {
	var tokens []string
	if a.Has(AttrPure) {
		tokens = append(tokens, "pure")
	}
	if a.Has(AttrNothrow) {
		tokens = append(tokens, "nothrow")
	}
	if a.Has(AttrRefReturn) {
		tokens = append(tokens, "ref")
	}
	if a.Has(AttrProperty) {
		tokens = append(tokens, "@property")
	}
	if a.Has(AttrTrusted) {
		tokens = append(tokens, "@trusted")
	}
	if a.Has(AttrSafe) {
		tokens = append(tokens, "@safe")
	}
	return tokens
}

// MethodQualifier is a set of invocation qualifier flags. Const, immutable
// and inout are mutually exclusive on a well-formed method; shared combines
// independently with any one of them.
type MethodQualifier uint

const (
	QualifierConst MethodQualifier = 1 << iota
	QualifierImmutable
	QualifierShared
	QualifierInout
)

// Has reports whether all flags in mq are set
func (q MethodQualifier) Has(mq MethodQualifier) bool {
	return q&mq == mq
}

// Linkage identifies the calling convention of a method
type Linkage int

const (
	LinkageNative Linkage = iota
	LinkageC
	LinkageCPP
	LinkageWindows
)

// String returns the string representation of the linkage
func (l Linkage) String() string {
	switch l {
	case LinkageC:
		return "C"
	case LinkageCPP:
		return "C++"
	case LinkageWindows:
		return "Windows"
	default:
		return "native"
	}
}

// VariadicStyle identifies how a method accepts an unbounded parameter list
type VariadicStyle int

const (
	VariadicNone VariadicStyle = iota
	VariadicC
	VariadicNative
	VariadicTypesafe
)

// String returns the string representation of the variadic style
func (v VariadicStyle) String() string {
	switch v {
	case VariadicC:
		return "c"
	case VariadicNative:
		return "native"
	case VariadicTypesafe:
		return "typesafe"
	default:
		return "none"
	}
}

// SymbolKind identifies what kind of callable a Method models. Only named
// methods resolve to an overridable member and can be cloned.
type SymbolKind int

const (
	SymbolNamedMethod SymbolKind = iota
	SymbolDelegate
	SymbolFunctionPointer
)

// String returns the string representation of the symbol kind
func (s SymbolKind) String() string {
	switch s {
	case SymbolNamedMethod:
		return "named method"
	case SymbolDelegate:
		return "delegate"
	case SymbolFunctionPointer:
		return "function pointer"
	default:
		return "unknown"
	}
}

// Parameter is a single method parameter
type Parameter struct {
	Name    string // optional; empty for unnamed parameters
	Type    *Type
	Storage StorageClass
}

// Method is a fully resolved method signature together with its attached
// annotations
type Method struct {
	Name        string
	Params      []Parameter // declaration order
	Return      *Type       // nil means void
	Variadic    VariadicStyle
	Attributes  FuncAttribute
	Linkage     Linkage
	Qualifiers  MethodQualifier
	Annotations []Annotation // declaration order
	Symbol      SymbolKind
}
