// Package registry manages the set of declared types a model may reference.
package registry

import (
	"sync"

	"github.com/toyz/mirror/internal/errors"
	"github.com/toyz/mirror/pkg/mirror"
)

// builtinNames are the primitive types every registry starts with. They
// resolve to no module and never appear in import lists.
var builtinNames = []string{
	"void", "bool",
	"byte", "ubyte", "short", "ushort", "int", "uint", "long", "ulong",
	"float", "double", "real",
	"char", "wchar", "dchar", "string",
}

type entry struct {
	typ *mirror.Type
	loc errors.SourceLocation
}

// TypeRegistry resolves type names to declared types. Full names
// (module-qualified) always resolve; bare names resolve when unambiguous
// across all registered modules.
type TypeRegistry struct {
	byFull  map[string]entry
	byShort map[string][]entry
	mu      sync.RWMutex
}

// NewTypeRegistry creates a registry preloaded with the built-in primitives
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{
		byFull:  make(map[string]entry),
		byShort: make(map[string][]entry),
	}
	for _, name := range builtinNames {
		r.byFull[name] = entry{typ: mirror.Primitive(name)}
	}
	return r
}

// Register adds a declared type. Registering the same full name twice is an
// error carrying both locations.
func (r *TypeRegistry) Register(t *mirror.Type, loc errors.SourceLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	full := t.FullName()
	if existing, exists := r.byFull[full]; exists {
		return errors.Newf(errors.RegistrationErrorCode,
			"type %q already registered at %s", full, existing.loc.String()).
			WithLocation(loc).
			WithSuggestion("rename one of the declarations or move it to another module")
	}

	e := entry{typ: t, loc: loc}
	r.byFull[full] = e
	if t.Module != "" {
		r.byShort[t.Name] = append(r.byShort[t.Name], e)
	}
	return nil
}

// Lookup resolves a type name, trying the full name first and falling back
// to an unambiguous bare name
func (r *TypeRegistry) Lookup(name string) (*mirror.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.byFull[name]; ok {
		return e.typ, true
	}
	if candidates := r.byShort[name]; len(candidates) == 1 {
		return candidates[0].typ, true
	}
	return nil, false
}

// Has reports whether a name resolves to a registered type
func (r *TypeRegistry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the full names of all registered non-builtin types
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byFull))
	for name, e := range r.byFull {
		if e.typ.Kind != mirror.KindPrimitive {
			names = append(names, name)
		}
	}
	return names
}
