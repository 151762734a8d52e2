package mirror

import "strings"

// ParamSig is the formatted form of a single parameter
type ParamSig struct {
	Storage []string // storage-class tokens in emission order
	Type    string   // fully-qualified type text
	Name    string   // optional parameter name
}

// Signature is the structured intermediate form of a cloned declaration.
// Keeping it separate from the textual formatter lets fidelity checks work
// on structure instead of string comparison.
type Signature struct {
	Linkage    string   // foreign-linkage prefix; empty for native methods
	Attributes []string // attribute tokens in emission order
	Return     string   // fully-qualified return type text
	Name       string
	Params     []ParamSig
	Variadic   VariadicStyle
	Qualifiers MethodQualifier
}

// BuildSignature resolves a method into its structured signature form. Only
// named methods resolve to an overridable member; delegates and function
// pointers fail with UnsupportedSymbolKindError.
func BuildSignature(m *Method) (*Signature, error) {
	if m.Symbol != SymbolNamedMethod {
		return nil, &UnsupportedSymbolKindError{Name: m.Name, Kind: m.Symbol}
	}

	sig := &Signature{
		Attributes: m.Attributes.Tokens(),
		Return:     m.Return.String(),
		Name:       m.Name,
		Variadic:   m.Variadic,
		Qualifiers: m.Qualifiers,
	}
	if m.Linkage != LinkageNative {
		sig.Linkage = "extern (" + m.Linkage.String() + ")"
	}
	for _, p := range m.Params {
		sig.Params = append(sig.Params, ParamSig{
			Storage: p.Storage.Tokens(),
			Type:    p.Type.String(),
			Name:    p.Name,
		})
	}
	return sig, nil
}

// String renders the signature as a self-contained redeclaration, suitable
// for injection into a subtype as an override with an identical call
// signature.
func (s *Signature) String() string {
	var b strings.Builder

	if s.Linkage != "" {
		b.WriteString(s.Linkage)
		b.WriteByte(' ')
	}
	for _, attr := range s.Attributes {
		b.WriteString(attr)
		b.WriteByte(' ')
	}
	b.WriteString(s.Return)
	b.WriteByte(' ')
	b.WriteString(s.Name)
	b.WriteByte('(')

	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		tokens := append(append([]string{}, p.Storage...), p.Type)
		if p.Name != "" {
			tokens = append(tokens, p.Name)
		}
		b.WriteString(joinTokens(tokens))
	}

	switch s.Variadic {
	case VariadicC:
		b.WriteString(", ...")
	case VariadicNative:
		if len(s.Params) > 0 {
			b.WriteString(", ...")
		} else {
			b.WriteString("...")
		}
	case VariadicTypesafe:
		b.WriteString(" ...")
	}
	b.WriteByte(')')

	decl := b.String()
	if s.Qualifiers.Has(QualifierShared) {
		decl = "shared(" + decl + ")"
	}
	switch {
	case s.Qualifiers.Has(QualifierConst):
		decl += " const"
	case s.Qualifiers.Has(QualifierImmutable):
		decl += " immutable"
	case s.Qualifiers.Has(QualifierInout):
		decl += " inout"
	}
	return decl
}

// CloneFunctionDeclaration synthesizes a fully-qualified textual
// redeclaration of the method: linkage, attributes, return type, name,
// parameter list with storage classes and variadic marker, and invocation
// qualifiers.
func CloneFunctionDeclaration(m *Method) (string, error) {
	sig, err := BuildSignature(m)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}
