package mirror

// IsPropertyGetter reports whether the method is a property getter: it
// carries the property marker and returns a value. The marker, not the
// arity, is authoritative.
func IsPropertyGetter(m *Method) bool {
	return m.Attributes.Has(AttrProperty) && !m.Return.IsVoid()
}

// IsPropertySetter reports whether the method is a property setter: it
// carries the property marker and returns void. Getter and setter are
// mutually exclusive for any one signature since return-type-is-void is a
// total partition.
func IsPropertySetter(m *Method) bool {
	return m.Attributes.Has(AttrProperty) && m.Return.IsVoid()
}
