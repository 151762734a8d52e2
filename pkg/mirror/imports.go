package mirror

// CollectRequiredImports walks every method of an interface — return type
// first, then parameters in declaration order — and resolves each nameable
// type to its originating module. Types with no module (built-ins) are
// skipped silently. The result is deduplicated by module name, preserving
// first-seen order across the whole method enumeration.
func CollectRequiredImports(iface *Aggregate) []string {
	seen := make(map[string]bool)
	var imports []string
	add := func(types []*Type) {
		for _, t := range types {
			if t.Module == "" || seen[t.Module] {
				continue
			}
			seen[t.Module] = true
			imports = append(imports, t.Module)
		}
	}

	for i := range iface.Methods {
		m := &iface.Methods[i]
		add(CollectNameableTypes(m.Return))
		for _, p := range m.Params {
			add(CollectNameableTypes(p.Type))
		}
	}
	return imports
}
