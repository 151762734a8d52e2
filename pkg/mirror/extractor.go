package mirror

// AnnotationPredicate decides whether an annotation matches an extraction
// request
type AnnotationPredicate func(Annotation) bool

// MatchShape matches any annotation whose shape (type name) equals the given
// name
func MatchShape(shape string) AnnotationPredicate {
	return func(a Annotation) bool {
		return a.Shape == shape
	}
}

// MatchValue matches annotations structurally equal to the given value
func MatchValue(want Annotation) AnnotationPredicate {
	return want.Equal
}

// ExtractAnnotation returns the first annotation in declaration order
// satisfying the predicate. Absence is a normal outcome, reported through
// the second return value, never an error.
func ExtractAnnotation(match AnnotationPredicate, annotations []Annotation) (Annotation, bool) {
	for _, a := range annotations {
		if match(a) {
			return a, true
		}
	}
	return Annotation{}, false
}
