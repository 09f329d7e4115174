package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sambeau/mlsp/config"
	"github.com/sambeau/mlsp/pkg/mlsp/errors"
	"github.com/sambeau/mlsp/pkg/mlsp/mlsp"
	"github.com/sambeau/mlsp/pkg/mlsp/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.1.0"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	// Evaluation flags
	evalFlag     = flag.String("e", "", "Evaluate code string")
	evalLongFlag = flag.String("eval", "", "Evaluate code string")

	// Watch flags
	watchFlag     = flag.Bool("w", false, "Re-run the script when its file changes")
	watchLongFlag = flag.Bool("watch", false, "Re-run the script when its file changes")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag || *versionLongFlag {
		fmt.Printf("mlsp version %s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.Discover()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Get eval code (prefer -e over --eval if both set)
	evalCode := *evalFlag
	if evalCode == "" {
		evalCode = *evalLongFlag
	}

	watch := *watchFlag || *watchLongFlag

	// Mode dispatch
	switch {
	case evalCode != "":
		// Inline evaluation mode
		if err := runSource(evalCode); err != nil {
			printError(err)
			os.Exit(1)
		}
	case watch:
		// Watch mode: needs exactly one script file
		if len(flag.Args()) != 1 {
			fmt.Fprintln(os.Stderr, "Error: --watch requires exactly one script file")
			os.Exit(2)
		}
		if err := watchAndRun(flag.Args()[0], cfg.Debounce(), os.Stdout, os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	case len(flag.Args()) == 1:
		// File execution mode
		if err := runFile(flag.Args()[0]); err != nil {
			printError(err)
			os.Exit(1)
		}
	case len(flag.Args()) > 1:
		fmt.Fprintln(os.Stderr, "Invalid number of arguments. Expected 1 argument with source code file.")
		os.Exit(2)
	default:
		// REPL mode
		repl.Start(os.Stdout, cfg, Version)
	}
}

// runFile reads a UTF-8 source file and runs it.
func runFile(filename string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("something went wrong reading the source file: %w", err)
	}
	return runSource(string(source))
}

// runSource runs source text in a fresh environment and prints each
// top-level result on its own line.
func runSource(source string) error {
	results, err := mlsp.Run(source)
	if err != nil {
		return err
	}
	for _, result := range results {
		fmt.Println(result.Inspect())
	}
	return nil
}

func printError(err error) {
	if lerr, ok := err.(*errors.LangError); ok {
		fmt.Fprintln(os.Stderr, lerr.PrettyString())
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}

func printHelp() {
	fmt.Printf(`mlsp - micro lispesque interpreter version %s

Usage:

  mlsp [flags] [file.mlsp]

Modes:

  mlsp                      Start the interactive REPL
  mlsp file.mlsp            Run a script
  mlsp -e '(+ 1 2)'         Evaluate an inline expression
  mlsp -w file.mlsp         Run a script, re-running on every file change

Flags:

  -e, --eval CODE           Evaluate code string
  -w, --watch               Re-run the script when its file changes
  -V, --version             Show version information
  -h, --help                Show this help message

Configuration is read from ./.mlsp.yaml or ~/.mlsp.yaml if present.
`, Version)
}
