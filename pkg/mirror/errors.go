package mirror

import "fmt"

// MultipleInterfacesError reports that a concrete type could not be reduced
// to a single interface. It is a definition-time failure: the caller must
// disambiguate by supplying the interface explicitly.
type MultipleInterfacesError struct {
	Type       string   // full name of the type being reduced
	Interfaces []string // full names of the candidate interfaces, in discovery order
}

// Error implements the error interface
func (e *MultipleInterfacesError) Error() string {
	if len(e.Interfaces) == 0 {
		return fmt.Sprintf("type %s implements no interface to reduce to", e.Type)
	}
	return fmt.Sprintf("type %s implements %d interfaces; supply the target interface explicitly", e.Type, len(e.Interfaces))
}

// UnsupportedSymbolKindError reports that declaration cloning was requested
// on a symbol that does not resolve to a named, overridable member.
type UnsupportedSymbolKindError struct {
	Name string     // symbol name, if any
	Kind SymbolKind // the offending symbol kind
}

// Error implements the error interface
func (e *UnsupportedSymbolKindError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("cannot clone declaration of a %s; only named methods are clonable", e.Kind)
	}
	return fmt.Sprintf("cannot clone declaration of %s: %s symbols are not overridable members", e.Name, e.Kind)
}
