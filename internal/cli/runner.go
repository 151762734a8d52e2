// Package cli drives the mirror code generator: it loads model files,
// generates proxy units and bindings, writes them out and reports
// diagnostics.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/toyz/mirror/internal/generator"
	"github.com/toyz/mirror/internal/loader"
)

// Options configures a generation run
type Options struct {
	ModelFiles   []string // YAML model files to process
	OutputDir    string   // directory generated files are written to
	Module       string   // custom Go module name for bindings imports
	BindingsPkg  string   // Go package name for bindings; empty disables bindings output
	Verbose      bool
	Quiet        bool
}

// Runner executes generation runs
type Runner struct {
	loader    *loader.Loader
	generator *generator.Generator
	resolver  *ModuleResolver
	reporter  *DiagnosticReporter
}

// NewRunner creates a runner for the given options
func NewRunner(opts Options) *Runner {
	return &Runner{
		loader:    loader.NewLoader(),
		generator: generator.NewGenerator(),
		resolver:  NewModuleResolver(),
		reporter:  NewDiagnosticReporter(opts.Verbose, opts.Quiet),
	}
}

// Run processes every model file and writes the generated outputs. It
// returns the number of interfaces generated.
func (r *Runner) Run(opts Options) (int, error) {
	runID := uuid.NewString()
	r.reporter.ReportProgress("mirror generation run %s", runID)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	var bindingsPkgPath string
	if opts.BindingsPkg != "" {
		moduleName, err := r.resolver.ResolveModuleName(opts.Module)
		if err != nil {
			return 0, err
		}
		bindingsPkgPath, err = r.resolver.BuildPackagePath(moduleName, opts.OutputDir)
		if err != nil {
			return 0, err
		}
		if opts.Verbose {
			r.reporter.ReportProgress("bindings package path: %s", bindingsPkgPath)
		}
	}

	generated := 0
	for _, modelFile := range opts.ModelFiles {
		doc, err := r.loader.LoadFile(modelFile)
		if err != nil {
			r.reporter.ReportError(err)
			return generated, err
		}
		if len(doc.Interfaces) == 0 {
			r.reporter.ReportWarning(fmt.Sprintf("%s declares no interfaces, nothing to generate", modelFile))
			continue
		}

		for _, iface := range doc.Interfaces {
			unit, err := r.generator.GenerateProxyUnit(iface)
			if err != nil {
				r.reporter.ReportError(err)
				return generated, err
			}
			unitPath := filepath.Join(opts.OutputDir, snakeCase(iface.Name)+"_proxy.d")
			if err := os.WriteFile(unitPath, []byte(unit), 0o644); err != nil {
				return generated, fmt.Errorf("failed to write %s: %w", unitPath, err)
			}

			if opts.BindingsPkg != "" {
				bindings, err := r.generator.GenerateBindings(iface, opts.BindingsPkg, bindingsPkgPath)
				if err != nil {
					r.reporter.ReportError(err)
					return generated, err
				}
				bindingsPath := filepath.Join(opts.OutputDir, snakeCase(iface.Name)+"_bindings.go")
				if err := os.WriteFile(bindingsPath, []byte(bindings), 0o644); err != nil {
					return generated, fmt.Errorf("failed to write %s: %w", bindingsPath, err)
				}
			}

			generated++
			r.reporter.ReportSuccess("generated %s (%d methods)", iface.FullName(), len(iface.Methods))
		}
	}

	return generated, nil
}

// snakeCase converts an interface name to a file-name-friendly form,
// keeping runs of capitals (acronyms) together
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(name[i-1] >= 'A' && name[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
