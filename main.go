// kasl analyzes and compiles script source to bytecode: the static
// analyzer, optimizer, and compiler for a small embedded scripting
// language, without a virtual machine to run the result in.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/repl"
	"github.com/kasl-lang/kasl/session"
)

const version = "0.1.0"

func printUsage() {
	_, _ = fmt.Fprintf(os.Stderr, `kasl v%s

USAGE:
    %s [OPTIONS]

DESCRIPTION:
    kasl parses, analyzes, and compiles script source into bytecode.
    Without any flags, it starts an interactive REPL.

OPTIONS:
    -f, --file <path>       Analyze and compile a script file
    -e, --eval <code>       Analyze and compile a script snippet
    -d, --debug             Show bytecode disassembly and fold counts
    -v, --version           Show version information
    -h, --help              Show this help message

EXAMPLES:
    # Start interactive REPL
    %s

    # Analyze a script file
    %s -f script.lsl
    %s --file script.lsl -d

    # Analyze a snippet
    %s -e "integer N = 2 + 3;"

`, version, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}

func main() {
	flag.Usage = printUsage

	fileFlag := flag.String("file", "", "Analyze and compile a script file")
	evalFlag := flag.String("eval", "", "Analyze and compile a script snippet")
	debugFlag := flag.Bool("debug", false, "Show bytecode disassembly and fold counts")
	versionFlag := flag.Bool("version", false, "Show version information")

	flag.StringVar(fileFlag, "f", "", "Analyze and compile a script file")
	flag.StringVar(evalFlag, "e", "", "Analyze and compile a script snippet")
	flag.BoolVar(debugFlag, "d", false, "Show bytecode disassembly and fold counts")
	flag.BoolVar(versionFlag, "v", false, "Show version information")

	flag.Parse()

	if *versionFlag {
		fmt.Printf("kasl v%s\n", version)
		return
	}

	if *fileFlag != "" {
		analyzeFile(*fileFlag, *debugFlag)
		return
	}

	if *evalFlag != "" {
		analyzeSnippet("<eval>", *evalFlag, *debugFlag)
		return
	}

	username := "unknown"
	if usr, err := user.Current(); err == nil {
		username = usr.Username
	}

	repl.Start(username, repl.Options{Debug: *debugFlag})
}

func analyzeFile(filename string, debug bool) {
	cleaned := filepath.Clean(filename)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		fmt.Printf("Error getting absolute path: %s\n", err)
		os.Exit(1)
	}

	//nolint:gosec // the path comes from a trusted CLI flag, not user input
	content, err := os.ReadFile(absolute)
	if err != nil {
		fmt.Printf("Error reading file: %s\n", err)
		os.Exit(1)
	}

	analyzeSnippet(absolute, string(content), debug)
}

func analyzeSnippet(name, src string, debug bool) {
	sess := session.New(name, src, session.Options{RunSimplify: true})
	result := sess.Run()

	for _, d := range result.Log.Entries() {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if result.Log.HasErrors() {
		os.Exit(1)
	}

	if debug {
		fmt.Printf("folded: %d\n\n", result.FoldedTotal)
		for _, fn := range result.Program.Functions {
			fmt.Printf("function %s:\n%s", fn.Name, fn.Instructions.String())
		}
	} else {
		warnings := 0
		for _, d := range result.Log.Entries() {
			if d.Severity == diagnostics.Warning {
				warnings++
			}
		}
		fmt.Printf("ok: %d function(s) compiled, %d warning(s)\n", len(result.Program.Functions), warnings)
	}
}
