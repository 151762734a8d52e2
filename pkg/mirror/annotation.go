package mirror

import (
	"fmt"
	"strconv"
	"strings"
)

// AnnotationKind identifies the shape of an annotation value
type AnnotationKind int

const (
	AnnotationString AnnotationKind = iota
	AnnotationInt
	AnnotationBool
	AnnotationFloat
	AnnotationTypeLiteral
	AnnotationComposite
)

// String returns the string representation of the annotation kind
func (k AnnotationKind) String() string {
	switch k {
	case AnnotationString:
		return "string"
	case AnnotationInt:
		return "int"
	case AnnotationBool:
		return "bool"
	case AnnotationFloat:
		return "float"
	case AnnotationTypeLiteral:
		return "type literal"
	case AnnotationComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Annotation is a tagged-variant metadata value attached to a declaration.
// Shape names the value's type ("string", "int", or the declared name of a
// composite/type-literal annotation) and is what shape-based extraction
// matches against.
type Annotation struct {
	Kind  AnnotationKind
	Shape string
	Str   string
	Int   int64
	Bool  bool
	Float float64
	Args  []Annotation // ordered arguments of a composite annotation
}

// StringAnnotation returns a string-valued annotation
func StringAnnotation(v string) Annotation {
	return Annotation{Kind: AnnotationString, Shape: "string", Str: v}
}

// IntAnnotation returns an integer-valued annotation
func IntAnnotation(v int64) Annotation {
	return Annotation{Kind: AnnotationInt, Shape: "int", Int: v}
}

// BoolAnnotation returns a boolean-valued annotation
func BoolAnnotation(v bool) Annotation {
	return Annotation{Kind: AnnotationBool, Shape: "bool", Bool: v}
}

// FloatAnnotation returns a floating-point-valued annotation
func FloatAnnotation(v float64) Annotation {
	return Annotation{Kind: AnnotationFloat, Shape: "float", Float: v}
}

// TypeLiteralAnnotation returns an annotation naming a type rather than
// carrying a value
func TypeLiteralAnnotation(shape string) Annotation {
	return Annotation{Kind: AnnotationTypeLiteral, Shape: shape}
}

// CompositeAnnotation returns a constructed annotation value such as
// Attr(42), with its arguments in declaration order
func CompositeAnnotation(shape string, args ...Annotation) Annotation {
	return Annotation{Kind: AnnotationComposite, Shape: shape, Args: args}
}

// Equal reports structural equality of two annotation values
func (a Annotation) Equal(b Annotation) bool {
	if a.Kind != b.Kind || a.Shape != b.Shape {
		return false
	}
	switch a.Kind {
	case AnnotationString:
		return a.Str == b.Str
	case AnnotationInt:
		return a.Int == b.Int
	case AnnotationBool:
		return a.Bool == b.Bool
	case AnnotationFloat:
		return a.Float == b.Float
	case AnnotationComposite:
		if len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !a.Args[i].Equal(b.Args[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String formats the annotation the way it was written at the declaration
func (a Annotation) String() string {
	switch a.Kind {
	case AnnotationString:
		return strconv.Quote(a.Str)
	case AnnotationInt:
		return strconv.FormatInt(a.Int, 10)
	case AnnotationBool:
		return strconv.FormatBool(a.Bool)
	case AnnotationFloat:
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	case AnnotationComposite:
		args := make([]string, len(a.Args))
		for i, arg := range a.Args {
			args[i] = arg.String()
		}
		return fmt.Sprintf("%s(%s)", a.Shape, strings.Join(args, ", "))
	default:
		return a.Shape
	}
}
