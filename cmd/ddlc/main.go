// Command ddlc is the CLI driver: flag-based verb dispatch over the
// parser/elaborator/module-compiler/codegen/repl pipeline, structured
// exactly like the teacher's cmd/ailang/main.go (the same Version/Commit/
// BuildTime ldflags globals, the same colorized green/red/yellow/cyan/bold
// helpers, flag.Parse() followed by a verb switch on flag.Arg(0)).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ddlc/ddlc/internal/codegen"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/module"
	"github.com/ddlc/ddlc/internal/repl"
	"github.com/ddlc/ddlc/internal/surface"
)

var (
	// Set by ldflags during build.
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		gostubFlag  = flag.Bool("gostub", false, "With 'doc', also render a Go host-language stub")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	command := flag.Arg(0)
	switch command {
	case "check":
		requireFile(command)
		cmdCheck(flag.Arg(1))
	case "parse":
		requireFile(command)
		cmdParse(flag.Arg(1))
	case "doc":
		requireFile(command)
		cmdDoc(flag.Arg(1), *gostubFlag)
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func requireFile(cmd string) {
	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
		fmt.Printf("Usage: ddlc %s <file.ddl>\n", cmd)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("ddlc %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
	if BuildTime != "unknown" {
		fmt.Printf("Built:  %s\n", BuildTime)
	}
}

func printHelp() {
	fmt.Println(bold("ddlc - a dependently-typed data description language compiler"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ddlc <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>   Parse and elaborate a module, report diagnostics\n", cyan("check"))
	fmt.Printf("  %s <file>   Parse a module, report syntax errors only\n", cyan("parse"))
	fmt.Printf("  %s <file>   Render Markdown documentation for a module\n", cyan("doc"))
	fmt.Printf("  %s            Start the interactive explorer\n", cyan("repl"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version   Print version information")
	fmt.Println("  --help      Show this help message")
	fmt.Println("  --gostub    (with doc) also render a Go host-language stub")
}

func readFile(path string) []byte {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file %q: %v\n", red("Error"), path, err)
		os.Exit(1)
	}
	return content
}

func parseFile(path string) *surface.Module {
	content := readFile(path)
	sink := diag.NewSink()
	p := surface.NewParser(surface.Normalize(content), path, sink)
	mod := p.ParseModule()
	if len(sink.Reports()) > 0 {
		printReports(sink.Reports())
		os.Exit(1)
	}
	return mod
}

func cmdParse(path string) {
	mod := parseFile(path)
	fmt.Printf("%s parsed %d item(s)\n", green("✓"), len(mod.Items))
}

func cmdCheck(path string) {
	mod := parseFile(path)
	_, reports := module.Compile(mod.Items)
	if len(reports) > 0 {
		printReports(reports)
		os.Exit(1)
	}
	fmt.Printf("%s no errors found\n", green("✓"))
}

func cmdDoc(path string, gostub bool) {
	mod := parseFile(path)
	prog, reports := module.Compile(mod.Items)
	if len(reports) > 0 {
		printReports(reports)
		os.Exit(1)
	}

	fmt.Print(codegen.RenderDocs(prog, Version))
	if gostub {
		fmt.Print(codegen.RenderGoStub(prog))
	}
}

func cmdRepl() {
	if err := repl.New(os.Stdout).Run(Version); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
}

func printReports(reports []*diag.Report) {
	for _, r := range reports {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", red(r.Code+":"), yellow(r.Phase), r.Message)
	}
}
