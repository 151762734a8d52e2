package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toyz/mirror/internal/cli"
)

func main() {
	var (
		outFlag      = flag.String("out", "generated", "Output directory for generated files")
		moduleFlag   = flag.String("module", "", "Custom Go module name for bindings imports (defaults to go.mod module)")
		bindingsFlag = flag.String("bindings", "", "Go package name for bindings output (empty disables bindings generation)")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag    = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag     = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <model-files...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Mirror Declaration Generator\n")
		fmt.Fprintf(os.Stderr, "Reads YAML interface models and generates mirrored proxy declarations and import lists.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  model-files    One or more YAML model files describing interfaces to mirror\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s api.yaml                              # Generate proxy units into ./generated\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -out gen -bindings restgen api.yaml   # Also emit Go bindings in package restgen\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose api.yaml models.yaml         # Enable detailed output\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one model file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	opts := cli.Options{
		ModelFiles:  args,
		OutputDir:   *outFlag,
		Module:      *moduleFlag,
		BindingsPkg: *bindingsFlag,
		Verbose:     *verboseFlag,
		Quiet:       *quietFlag,
	}

	runner := cli.NewRunner(opts)
	generated, err := runner.Run(opts)
	if err != nil {
		os.Exit(1)
	}
	if !*quietFlag {
		fmt.Printf("Generated %d interface(s)\n", generated)
	}
}
