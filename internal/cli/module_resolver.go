package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModuleResolver resolves the Go module the bindings output belongs to
type ModuleResolver struct{}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// ResolveModuleName resolves the module name for generated bindings.
// If customModule is provided it is used as-is; otherwise the nearest go.mod
// is located and parsed.
func (r *ModuleResolver) ResolveModuleName(customModule string) (string, error) {
	if customModule != "" {
		return customModule, nil
	}

	goModPath, err := r.findGoModFile()
	if err != nil {
		return "", fmt.Errorf("failed to determine module name: %w (consider using --module flag)", err)
	}
	return r.parseGoModFile(goModPath)
}

// findGoModFile searches for go.mod starting from the working directory and
// walking up
func (r *ModuleResolver) findGoModFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// reached the filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod file not found")
}

// parseGoModFile extracts the module path using the official modfile parser
func (r *ModuleResolver) parseGoModFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}

	modFile, err := modfile.Parse(path, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod file: %w", err)
	}
	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in go.mod")
	}
	return modFile.Module.Mod.Path, nil
}

// BuildPackagePath builds the full import path for an output directory
func (r *ModuleResolver) BuildPackagePath(moduleName, packageDir string) (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	absPackageDir, err := filepath.Abs(packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve package directory: %w", err)
	}

	relPath, err := filepath.Rel(currentDir, absPackageDir)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}

	importPath := filepath.ToSlash(relPath)
	if importPath == "." {
		return moduleName, nil
	}
	return fmt.Sprintf("%s/%s", moduleName, importPath), nil
}
