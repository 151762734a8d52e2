package mirror

// ReduceToInterface yields the interface an aggregate stands for: an
// interface reduces to itself, a class to the single distinct interface in
// its transitively-implemented set. Any other outcome — zero interfaces,
// more than one, or a non-reducible aggregate kind — fails with a
// MultipleInterfacesError.
func ReduceToInterface(agg *Aggregate) (*Aggregate, error) {
	if agg.Kind == AggregateInterface {
		return agg, nil
	}
	if agg.Kind != AggregateClass {
		return nil, &MultipleInterfacesError{Type: agg.FullName()}
	}

	seen := make(map[string]bool)
	var ifaces []*Aggregate
	var visit func(list []*Aggregate)
	visit = func(list []*Aggregate) {
		for _, in := range list {
			// only interfaces are reduction candidates, whatever the
			// caller put in the implemented set
			if in.Kind != AggregateInterface || seen[in.FullName()] {
				continue
			}
			seen[in.FullName()] = true
			ifaces = append(ifaces, in)
			visit(in.Implements)
		}
	}
	visit(agg.Implements)

	if len(ifaces) != 1 {
		names := make([]string, len(ifaces))
		for i, in := range ifaces {
			names[i] = in.FullName()
		}
		return nil, &MultipleInterfacesError{Type: agg.FullName(), Interfaces: names}
	}
	return ifaces[0], nil
}
