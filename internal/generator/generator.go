// Package generator turns resolved interface models into generated output:
// a mirrored proxy declaration unit per interface, and an optional Go
// bindings file embedding the cloned signatures for REST-layer consumers.
package generator

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/toyz/mirror/internal/errors"
	"github.com/toyz/mirror/pkg/mirror"
)

const generatedHeader = "// Code generated by mirror. DO NOT EDIT.\n// This file was automatically generated and should not be modified manually.\n"

// Generator produces generated output for resolved interfaces
type Generator struct{}

// NewGenerator creates a new generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateProxyUnit emits the mirrored declaration unit for an interface:
// the import block computed from its method signatures, and a proxy class
// redeclaring every method as an override. Plain methods come first,
// property getters and setters after, each group in declaration order.
func (g *Generator) GenerateProxyUnit(iface *mirror.Aggregate) (string, error) {
	if iface.Kind != mirror.AggregateInterface {
		return "", errors.Newf(errors.GenerationErrorCode, "cannot generate a proxy for %s %s", iface.Kind, iface.FullName()).
			WithSuggestion("reduce the type to its interface first")
	}

	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n")

	// the proxy extends the interface, so its module is always imported
	seen := map[string]bool{}
	for _, module := range append([]string{iface.Module}, mirror.CollectRequiredImports(iface)...) {
		if module == "" || seen[module] {
			continue
		}
		seen[module] = true
		fmt.Fprintf(&b, "import %s;\n", module)
	}

	fmt.Fprintf(&b, "\nfinal class %sProxy : %s {\n", iface.Name, iface.FullName())

	var plain, getters, setters []string
	for i := range iface.Methods {
		m := &iface.Methods[i]
		decl, err := mirror.CloneFunctionDeclaration(m)
		if err != nil {
			return "", errors.Wrapf(errors.GenerationErrorCode, err, "failed to clone %s.%s", iface.Name, m.Name)
		}
		line := "    override " + decl + ";"
		switch {
		case mirror.IsPropertyGetter(m):
			getters = append(getters, line)
		case mirror.IsPropertySetter(m):
			setters = append(setters, line)
		default:
			plain = append(plain, line)
		}
	}
	for _, group := range [][]string{plain, getters, setters} {
		for _, line := range group {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// GenerateBindings emits a Go source file exposing the cloned signatures and
// required imports of an interface as data, for consumption by code that
// wires the generated proxies into a server or client. packagePath is the
// go.mod-derived import path of the output package; when set it is recorded
// in the file header so consumers know where the bindings are importable
// from. The output is formatted with the standard imports processor.
func (g *Generator) GenerateBindings(iface *mirror.Aggregate, packageName, packagePath string) (string, error) {
	if packageName == "" {
		return "", errors.New(errors.GenerationErrorCode, "bindings generation requires a package name")
	}

	var b strings.Builder
	b.WriteString(generatedHeader)
	if packagePath != "" {
		fmt.Fprintf(&b, "//\n// Importable as %q.\n", packagePath)
	}
	fmt.Fprintf(&b, "\npackage %s\n\n", packageName)

	fmt.Fprintf(&b, "// %sSignatures maps each method of %s to its cloned declaration.\n", iface.Name, iface.FullName())
	fmt.Fprintf(&b, "var %sSignatures = map[string]string{\n", iface.Name)

	names := make([]string, 0, len(iface.Methods))
	decls := make(map[string]string, len(iface.Methods))
	for i := range iface.Methods {
		m := &iface.Methods[i]
		decl, err := mirror.CloneFunctionDeclaration(m)
		if err != nil {
			return "", errors.Wrapf(errors.GenerationErrorCode, err, "failed to clone %s.%s", iface.Name, m.Name)
		}
		names = append(names, m.Name)
		decls[m.Name] = decl
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "\t%q: %q,\n", name, decls[name])
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "// %sImports lists the modules the mirrored declarations depend on.\n", iface.Name)
	fmt.Fprintf(&b, "var %sImports = []string{\n", iface.Name)
	for _, module := range mirror.CollectRequiredImports(iface) {
		fmt.Fprintf(&b, "\t%q,\n", module)
	}
	b.WriteString("}\n")

	formatted, err := imports.Process("", []byte(b.String()), nil)
	if err != nil {
		return "", errors.Wrap(errors.GenerationErrorCode, "generated bindings do not compile", err)
	}
	return string(formatted), nil
}
