// Package mirror implements a static reflection and declaration-generation
// engine: given an explicit model of an interface (its methods, their types,
// qualifiers and annotations), it classifies members, reduces classes to
// their implemented interface, extracts annotations, walks type expressions
// down to their nameable constituents, clones method declarations as text,
// and computes import lists for generated code.
package mirror

import (
	"fmt"
	"strings"
)

// TypeKind identifies the structural kind of a type expression
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindStruct
	KindClass
	KindInterface
	KindEnum
	KindStaticArray
	KindDynamicArray
	KindAssocArray
	KindPointer
	KindRef
)

// String returns the string representation of the type kind
func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindStaticArray:
		return "static array"
	case KindDynamicArray:
		return "dynamic array"
	case KindAssocArray:
		return "associative array"
	case KindPointer:
		return "pointer"
	case KindRef:
		return "reference"
	default:
		return "unknown"
	}
}

// Type is a kind-tagged, immutable type expression. Aggregate and enum kinds
// carry a name and the module they are declared in; array, map and
// indirection kinds wrap their element (and key) types.
type Type struct {
	Kind   TypeKind
	Name   string // declared name; set for primitives, aggregates and enums
	Module string // originating module; empty for primitives and built-ins
	Elem   *Type  // element type for arrays, maps and indirections
	Key    *Type  // key type for associative arrays
	Len    int    // element count for static arrays
}

// Primitive returns a built-in type with the given name
func Primitive(name string) *Type {
	return &Type{Kind: KindPrimitive, Name: name}
}

// Void is the empty return type.
var Void = Primitive("void")

// AggregateType returns a named struct/class/interface/enum type declared in
// the given module
func AggregateType(kind TypeKind, module, name string) *Type {
	return &Type{Kind: kind, Name: name, Module: module}
}

// DynamicArrayOf returns a dynamic array of elem
func DynamicArrayOf(elem *Type) *Type {
	return &Type{Kind: KindDynamicArray, Elem: elem}
}

// StaticArrayOf returns a fixed-size array of elem
func StaticArrayOf(elem *Type, length int) *Type {
	return &Type{Kind: KindStaticArray, Elem: elem, Len: length}
}

// AssocArrayOf returns an associative array mapping key to elem
func AssocArrayOf(key, elem *Type) *Type {
	return &Type{Kind: KindAssocArray, Key: key, Elem: elem}
}

// PointerTo returns a pointer to elem
func PointerTo(elem *Type) *Type {
	return &Type{Kind: KindPointer, Elem: elem}
}

// RefTo returns a reference indirection to elem
func RefTo(elem *Type) *Type {
	return &Type{Kind: KindRef, Elem: elem}
}

// IsVoid reports whether the type is the empty return type
func (t *Type) IsVoid() bool {
	return t == nil || (t.Kind == KindPrimitive && t.Name == "void")
}

// IsNameable reports whether the type is a declared aggregate or enum, the
// unit of module and import resolution
func (t *Type) IsNameable() bool {
	switch t.Kind {
	case KindStruct, KindClass, KindInterface, KindEnum:
		return true
	default:
		return false
	}
}

// FullName returns the module-qualified name for nameable types and the bare
// name for primitives
func (t *Type) FullName() string {
	if t.Module == "" {
		return t.Name
	}
	return t.Module + "." + t.Name
}

// String formats the type expression the way it appears in a declaration,
// with nameable types fully qualified
func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case KindStaticArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Len)
	case KindDynamicArray:
		return t.Elem.String() + "[]"
	case KindAssocArray:
		return t.Elem.String() + "[" + t.Key.String() + "]"
	case KindPointer:
		return t.Elem.String() + "*"
	case KindRef:
		// reference semantics carry no type syntax of their own
		return t.Elem.String()
	default:
		return t.FullName()
	}
}

// AggregateKind identifies what sort of declaration an Aggregate is
type AggregateKind int

const (
	AggregateStruct AggregateKind = iota
	AggregateClass
	AggregateInterface
	AggregateEnum
)

// String returns the string representation of the aggregate kind
func (k AggregateKind) String() string {
	switch k {
	case AggregateStruct:
		return "struct"
	case AggregateClass:
		return "class"
	case AggregateInterface:
		return "interface"
	case AggregateEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Aggregate is a declared type with members: an interface contract, a class
// implementing interfaces, a plain struct or an enum. Methods and
// annotations are in declaration order.
type Aggregate struct {
	Kind        AggregateKind
	Name        string
	Module      string // module the declaration lives in
	Methods     []Method
	Implements  []*Aggregate // directly implemented interfaces (classes and interfaces)
	Annotations []Annotation
}

// FullName returns the module-qualified name of the declaration
func (a *Aggregate) FullName() string {
	if a.Module == "" {
		return a.Name
	}
	return a.Module + "." + a.Name
}

// Type returns the type expression referring to this declaration
func (a *Aggregate) Type() *Type {
	kind := KindStruct
	switch a.Kind {
	case AggregateClass:
		kind = KindClass
	case AggregateInterface:
		kind = KindInterface
	case AggregateEnum:
		kind = KindEnum
	}
	return &Type{Kind: kind, Name: a.Name, Module: a.Module}
}

// joinTokens space-joins the non-empty tokens
func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
