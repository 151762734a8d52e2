package mirror

// CollectNameableTypes decomposes a type expression into the sequence of
// declared aggregate and enum types it is built from, in a fixed structural
// order: arrays and indirections recurse into their element, associative
// arrays into the value side then the key side. Primitives contribute
// nothing. Duplicates are preserved; callers deduplicate as needed.
//
// The walk is structural, over a finite type expression, so it terminates
// without cycle detection even for self-referential declarations.
func CollectNameableTypes(t *Type) []*Type {
	var out []*Type
	collectNameable(t, &out)
	return out
}

func collectNameable(t *Type, out *[]*Type) {
	if t == nil {
		return
	}
	switch t.Kind {
	case KindStruct, KindClass, KindInterface, KindEnum:
		*out = append(*out, t)
	case KindStaticArray, KindDynamicArray, KindPointer, KindRef:
		collectNameable(t.Elem, out)
	case KindAssocArray:
		collectNameable(t.Elem, out)
		collectNameable(t.Key, out)
	}
}
