// Package loader reads YAML model files describing interfaces and produces
// resolved reflection-model values for the engine. A model file declares a
// module, the external types its signatures reference, the interfaces to
// mirror and optionally the classes implementing them.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/mirror/internal/annotations"
	"github.com/toyz/mirror/internal/errors"
	"github.com/toyz/mirror/internal/registry"
	"github.com/toyz/mirror/internal/typeexpr"
	"github.com/toyz/mirror/pkg/mirror"
)

// Document is a fully resolved model file
type Document struct {
	Module     string
	Interfaces []*mirror.Aggregate
	Classes    []*mirror.Aggregate
}

type fileSpec struct {
	Module     string          `yaml:"module"`
	Types      []typeSpec      `yaml:"types"`
	Interfaces []interfaceSpec `yaml:"interfaces"`
	Classes    []classSpec     `yaml:"classes"`
}

type typeSpec struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"` // struct|class|interface|enum
	Module string `yaml:"module"`
}

type interfaceSpec struct {
	Name        string       `yaml:"name"`
	Annotations []string     `yaml:"annotations"`
	Methods     []methodSpec `yaml:"methods"`
}

type methodSpec struct {
	Name        string      `yaml:"name"`
	Returns     string      `yaml:"returns"`
	Params      []paramSpec `yaml:"params"`
	Attributes  []string    `yaml:"attributes"`
	Qualifiers  []string    `yaml:"qualifiers"`
	Linkage     string      `yaml:"linkage"`
	Variadic    string      `yaml:"variadic"`
	Annotations []string    `yaml:"annotations"`
}

type paramSpec struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Storage []string `yaml:"storage"`
}

type classSpec struct {
	Name       string   `yaml:"name"`
	Module     string   `yaml:"module"` // defaults to the file module
	Implements []string `yaml:"implements"`
}

// Loader resolves model files against a shared type registry
type Loader struct {
	registry    *registry.TypeRegistry
	types       *typeexpr.Parser
	annotations *annotations.Parser
}

// NewLoader creates a loader backed by a fresh type registry
func NewLoader() *Loader {
	return &Loader{
		registry:    registry.NewTypeRegistry(),
		types:       typeexpr.NewParser(),
		annotations: annotations.NewParser(),
	}
}

// Registry exposes the loader's type registry
func (l *Loader) Registry() *registry.TypeRegistry {
	return l.registry
}

// LoadFile reads and resolves a single model file
func (l *Loader) LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read model file").
			WithLocation(errors.SourceLocation{File: path})
	}
	return l.Load(path, data)
}

// Load resolves model-file content. The path is used for error locations
// only.
func (l *Loader) Load(path string, data []byte) (*Document, error) {
	loc := errors.SourceLocation{File: path}

	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.SyntaxErrorCode, "failed to parse model file", err).WithLocation(loc)
	}
	if spec.Module == "" {
		return nil, errors.New(errors.ValidationErrorCode, "model file declares no module").
			WithLocation(loc).
			WithSuggestion("add a top-level 'module: your.module.name' entry")
	}

	// Declared external types and the file's own interfaces become
	// resolvable before any signature is processed.
	for _, ts := range spec.Types {
		kind, err := parseTypeKind(ts.Kind)
		if err != nil {
			return nil, errors.Wrapf(errors.ValidationErrorCode, err, "type %q", ts.Name).WithLocation(loc)
		}
		module := ts.Module
		if module == "" {
			module = spec.Module
		}
		if err := l.registry.Register(mirror.AggregateType(kind, module, ts.Name), loc); err != nil {
			return nil, err
		}
	}

	byName := make(map[string]*mirror.Aggregate)
	doc := &Document{Module: spec.Module}

	for _, is := range spec.Interfaces {
		iface := &mirror.Aggregate{
			Kind:   mirror.AggregateInterface,
			Name:   is.Name,
			Module: spec.Module,
		}
		if err := l.registry.Register(iface.Type(), loc); err != nil {
			return nil, err
		}
		byName[is.Name] = iface
		doc.Interfaces = append(doc.Interfaces, iface)
	}

	// Method signatures resolve in a second pass so interfaces may
	// reference each other and themselves.
	for i, is := range spec.Interfaces {
		iface := doc.Interfaces[i]
		anns, err := l.parseAnnotations(is.Annotations)
		if err != nil {
			return nil, err
		}
		iface.Annotations = anns

		for _, ms := range is.Methods {
			method, err := l.resolveMethod(ms, loc)
			if err != nil {
				return nil, errors.Wrapf(errors.ValidationErrorCode, err, "interface %s, method %s", is.Name, ms.Name).WithLocation(loc)
			}
			iface.Methods = append(iface.Methods, *method)
		}
	}

	for _, cs := range spec.Classes {
		module := cs.Module
		if module == "" {
			module = spec.Module
		}
		class := &mirror.Aggregate{
			Kind:   mirror.AggregateClass,
			Name:   cs.Name,
			Module: module,
		}
		for _, name := range cs.Implements {
			iface, ok := byName[name]
			if !ok {
				return nil, errors.Newf(errors.ResolutionErrorCode, "class %s implements unknown interface %q", cs.Name, name).
					WithLocation(loc).
					WithSuggestion("declare the interface in the same model file")
			}
			class.Implements = append(class.Implements, iface)
		}
		doc.Classes = append(doc.Classes, class)
	}

	return doc, nil
}

func (l *Loader) resolveMethod(ms methodSpec, loc errors.SourceLocation) (*mirror.Method, error) {
	if ms.Name == "" {
		return nil, fmt.Errorf("method has no name")
	}

	method := &mirror.Method{Name: ms.Name, Return: mirror.Void}

	if ms.Returns != "" {
		ret, err := l.types.Resolve(ms.Returns, l.registry)
		if err != nil {
			return nil, err
		}
		method.Return = ret
	}

	for _, ps := range ms.Params {
		typ, err := l.types.Resolve(ps.Type, l.registry)
		if err != nil {
			return nil, err
		}
		storage, err := parseStorage(ps.Storage)
		if err != nil {
			return nil, err
		}
		method.Params = append(method.Params, mirror.Parameter{Name: ps.Name, Type: typ, Storage: storage})
	}

	var err error
	if method.Attributes, err = parseAttributes(ms.Attributes); err != nil {
		return nil, err
	}
	if method.Qualifiers, err = parseQualifiers(ms.Qualifiers); err != nil {
		return nil, err
	}
	if method.Linkage, err = parseLinkage(ms.Linkage); err != nil {
		return nil, err
	}
	if method.Variadic, err = parseVariadic(ms.Variadic); err != nil {
		return nil, err
	}
	if method.Annotations, err = l.parseAnnotations(ms.Annotations); err != nil {
		return nil, err
	}
	return method, nil
}

func (l *Loader) parseAnnotations(literals []string) ([]mirror.Annotation, error) {
	var anns []mirror.Annotation
	for _, lit := range literals {
		a, err := l.annotations.Parse(lit)
		if err != nil {
			return nil, err
		}
		anns = append(anns, a)
	}
	return anns, nil
}

func parseTypeKind(s string) (mirror.TypeKind, error) {
	switch s {
	case "struct", "":
		return mirror.KindStruct, nil
	case "class":
		return mirror.KindClass, nil
	case "interface":
		return mirror.KindInterface, nil
	case "enum":
		return mirror.KindEnum, nil
	default:
		return 0, fmt.Errorf("unknown type kind %q (expected struct, class, interface or enum)", s)
	}
}

func parseStorage(names []string) (mirror.StorageClass, error) {
	var sc mirror.StorageClass
	for _, name := range names {
		switch name {
		case "scope":
			sc |= mirror.StorageScope
		case "out":
			sc |= mirror.StorageOut
		case "ref":
			sc |= mirror.StorageRef
		case "lazy":
			sc |= mirror.StorageLazy
		default:
			return 0, fmt.Errorf("unknown storage class %q (expected scope, out, ref or lazy)", name)
		}
	}
	return sc, nil
}

func parseAttributes(names []string) (mirror.FuncAttribute, error) {
	var fa mirror.FuncAttribute
	for _, name := range names {
		switch name {
		case "pure":
			fa |= mirror.AttrPure
		case "nothrow":
			fa |= mirror.AttrNothrow
		case "refReturn":
			fa |= mirror.AttrRefReturn
		case "property":
			fa |= mirror.AttrProperty
		case "trusted":
			fa |= mirror.AttrTrusted
		case "safe":
			fa |= mirror.AttrSafe
		default:
			return 0, fmt.Errorf("unknown attribute %q", name)
		}
	}
	return fa, nil
}

func parseQualifiers(names []string) (mirror.MethodQualifier, error) {
	var mq mirror.MethodQualifier
	for _, name := range names {
		switch name {
		case "const":
			mq |= mirror.QualifierConst
		case "immutable":
			mq |= mirror.QualifierImmutable
		case "shared":
			mq |= mirror.QualifierShared
		case "inout":
			mq |= mirror.QualifierInout
		default:
			return 0, fmt.Errorf("unknown qualifier %q", name)
		}
	}
	exclusive := 0
	for _, q := range []mirror.MethodQualifier{mirror.QualifierConst, mirror.QualifierImmutable, mirror.QualifierInout} {
		if mq.Has(q) {
			exclusive++
		}
	}
	if exclusive > 1 {
		return 0, fmt.Errorf("const, immutable and inout are mutually exclusive")
	}
	return mq, nil
}

func parseLinkage(s string) (mirror.Linkage, error) {
	switch s {
	case "", "native":
		return mirror.LinkageNative, nil
	case "C":
		return mirror.LinkageC, nil
	case "C++":
		return mirror.LinkageCPP, nil
	case "Windows":
		return mirror.LinkageWindows, nil
	default:
		return 0, fmt.Errorf("unknown linkage %q (expected native, C, C++ or Windows)", s)
	}
}

func parseVariadic(s string) (mirror.VariadicStyle, error) {
	switch s {
	case "", "none":
		return mirror.VariadicNone, nil
	case "c":
		return mirror.VariadicC, nil
	case "native":
		return mirror.VariadicNative, nil
	case "typesafe":
		return mirror.VariadicTypesafe, nil
	default:
		return 0, fmt.Errorf("unknown variadic style %q (expected none, c, native or typesafe)", s)
	}
}
