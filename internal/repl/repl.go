// Package repl implements the interactive explorer (§4.9): a small
// command loop over the already-built elaborator/evaluator/format
// pipeline, adapted from the teacher's cmd/ailang/main.go runREPL loop
// to this language's three commands (:parse, :elab, :eval) plus :quit.
// Unlike the teacher's hand-rolled bufio loop, history and line editing
// are delegated to github.com/peterh/liner, matching the dependency
// already pinned for this purpose in go.mod.
package repl

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/ddlc/ddlc/internal/bytesource"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/elab"
	"github.com/ddlc/ddlc/internal/eval"
	"github.com/ddlc/ddlc/internal/format"
	"github.com/ddlc/ddlc/internal/surface"
)

// toEvalCtx projects an elab.Ctx down to the evaluator's narrower Ctx —
// the REPL never needs elaboration's Locals/Sink once a term is already
// reduced to core syntax, only the global/value environments Eval reads.
func toEvalCtx(c elab.Ctx) eval.Ctx {
	return eval.Ctx{Globals: c.Globals, GlobalCache: c.GlobalCache, Locals: c.ValLocals}
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

const historyLimit = 1000

// REPL holds the state threaded across commands in one session: a single
// elab.Ctx whose Globals/Locals never change, since this explorer only
// ever elaborates one standalone term at a time, never a module.
type REPL struct {
	ctx elab.Ctx
	out io.Writer
}

// New builds a fresh REPL over an empty module environment.
func New(out io.Writer) *REPL {
	return &REPL{ctx: elab.NewCtx(diag.NewSink()), out: out}
}

// Run drives the line-editing loop until :quit or EOF. version is printed
// in the banner, mirroring cmd/ailang/main.go's runREPL banner.
func (r *REPL) Run(version string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintf(r.out, "%s v%s\n", bold("ddlc"), version)
	fmt.Fprintln(r.out, "Type :help for help, :quit to exit")

	var history []string
	for {
		input, err := line.Prompt("ddlc> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		history = append(history, input)
		if len(history) > historyLimit {
			history = history[len(history)-historyLimit:]
		}

		if input == ":quit" || input == ":q" {
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		}

		r.dispatch(input)
	}
}

func (r *REPL) dispatch(input string) {
	switch {
	case input == ":help" || input == ":h":
		r.printHelp()
	case strings.HasPrefix(input, ":parse "):
		r.cmdParse(strings.TrimPrefix(input, ":parse "))
	case strings.HasPrefix(input, ":elab "):
		r.cmdElab(strings.TrimPrefix(input, ":elab "))
	case strings.HasPrefix(input, ":eval "):
		r.cmdEval(strings.TrimPrefix(input, ":eval "))
	case strings.HasPrefix(input, ":"):
		fmt.Fprintf(r.out, "%s unknown command %q (try :help)\n", red("Error:"), input)
	default:
		// Bare input with no command prefix is treated as :eval, the
		// most common REPL action, matching the teacher's own
		// bare-expression-evaluates convention in runREPL.
		r.cmdEval(input)
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintf(r.out, "  %s <term>              infer/check a term, print its core form and type\n", cyan(":elab"))
	fmt.Fprintf(r.out, "  %s <term>              elaborate and evaluate a term to WHNF\n", cyan(":eval"))
	fmt.Fprintf(r.out, "  %s <type> <hexbytes>   elaborate <type>, then parse <hexbytes> against it\n", cyan(":parse"))
	fmt.Fprintf(r.out, "  %s                     exit\n", cyan(":quit"))
}

// parseStandaloneTerm parses src as one term, reporting any syntax error
// to the REPL's output writer and returning ok=false if nothing usable was
// produced.
func (r *REPL) parseStandaloneTerm(src string) (surface.Term, bool) {
	sink := diag.NewSink()
	p := surface.NewParser(surface.Normalize([]byte(src)), "<repl>", sink)
	term := p.ParseTerm()
	if term == nil || len(sink.Reports()) > 0 {
		r.printReports(sink.Reports())
		return nil, false
	}
	return term, true
}

func (r *REPL) cmdElab(src string) {
	term, ok := r.parseStandaloneTerm(src)
	if !ok {
		return
	}
	sink := diag.NewSink()
	ctx := r.ctx
	ctx.Sink = sink
	elaborated, typ, err := elab.Infer(ctx, term)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", red("internal error:"), err)
		return
	}
	if len(sink.Reports()) > 0 {
		r.printReports(sink.Reports())
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", cyan("core:"), elaborated.String())
	fmt.Fprintf(r.out, "%s %s\n", yellow("type:"), typ.String())
}

func (r *REPL) cmdEval(src string) {
	term, ok := r.parseStandaloneTerm(src)
	if !ok {
		return
	}
	sink := diag.NewSink()
	ctx := r.ctx
	ctx.Sink = sink
	coreTerm, typ, err := elab.Infer(ctx, term)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", red("internal error:"), err)
		return
	}
	if len(sink.Reports()) > 0 {
		r.printReports(sink.Reports())
		return
	}
	val, err := eval.Eval(toEvalCtx(ctx), coreTerm)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", red("eval error:"), err)
		return
	}
	fmt.Fprintf(r.out, "%s %s %s %s\n", green("="), val.String(), yellow(":"), typ.String())
}

func (r *REPL) cmdParse(rest string) {
	fields := strings.SplitN(strings.TrimSpace(rest), " ", 2)
	if len(fields) != 2 {
		fmt.Fprintln(r.out, "usage: :parse <type> <hexbytes>")
		return
	}
	typeSrc, hexSrc := fields[0], strings.TrimSpace(fields[1])

	term, ok := r.parseStandaloneTerm(typeSrc)
	if !ok {
		return
	}
	sink := diag.NewSink()
	ctx := r.ctx
	ctx.Sink = sink
	coreTy, _, err := elab.Infer(ctx, term)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", red("internal error:"), err)
		return
	}
	if len(sink.Reports()) > 0 {
		r.printReports(sink.Reports())
		return
	}

	evalCtx := toEvalCtx(ctx)
	whnf, err := eval.Eval(evalCtx, coreTy)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", red("eval error:"), err)
		return
	}

	raw, err := hex.DecodeString(strings.ReplaceAll(hexSrc, " ", ""))
	if err != nil {
		fmt.Fprintf(r.out, "%s invalid hex: %v\n", red("Error:"), err)
		return
	}

	result, err := format.Interpret(evalCtx, whnf, bytesource.Memory(raw))
	if err != nil {
		if rep, ok := diag.AsReport(err); ok {
			fmt.Fprintf(r.out, "%s %s\n", red(rep.Code+":"), rep.Message)
		} else {
			fmt.Fprintf(r.out, "%s %v\n", red("format error:"), err)
		}
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", green("="), result.String())
}

func (r *REPL) printReports(reports []*diag.Report) {
	for _, rep := range reports {
		fmt.Fprintf(r.out, "%s %s\n", red(rep.Code+":"), rep.Message)
	}
}
