// Completion: 100% - Utility module complete
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xyproto/jitcalc/conformance"
	"github.com/xyproto/jitcalc/internal/engine"
	"github.com/xyproto/jitcalc/internal/jit"
)

// cli.go - Command-line interface for jitcalc
//
// Subcommands:
// - jitcalc run <expr> (compile to native code and run)
// - jitcalc eval <expr> (evaluate the tree, no native code)
// - jitcalc dump <expr> (print the tree and the machine code)
// - jitcalc check <suite>... (run case tables)
// - jitcalc demo (run the demonstration table)
// - jitcalc <expr> (shorthand for run)

// errChecksFailed is returned when a case table has failures that were
// already reported
var errChecksFailed = errors.New("some checks failed")

// CommandContext holds the execution context for a CLI command
type CommandContext struct {
	Args    []string
	Options jit.Options
	Verbose bool
	Quiet   bool
	Oracle  bool
	Stdout  io.Writer
	Stderr  io.Writer
}

func NewCommandContext(args []string, opts jit.Options, verbose, quiet, oracle bool) *CommandContext {
	return &CommandContext{
		Args:    args,
		Options: opts,
		Verbose: verbose,
		Quiet:   quiet,
		Oracle:  oracle,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// RunCLI determines which command to run based on the arguments
func RunCLI(ctx *CommandContext) error {
	args := ctx.Args

	// No arguments - show help
	if len(args) == 0 {
		return cmdHelp(ctx)
	}

	switch subcmd := args[0]; subcmd {
	case "run":
		if len(args) < 2 {
			return fmt.Errorf("usage: jitcalc run <expression>")
		}
		return cmdRun(ctx, joinExpr(args[1:]))

	case "eval":
		if len(args) < 2 {
			return fmt.Errorf("usage: jitcalc eval <expression>")
		}
		return cmdEval(ctx, joinExpr(args[1:]))

	case "dump":
		if len(args) < 2 {
			return fmt.Errorf("usage: jitcalc dump <expression>")
		}
		return cmdDump(ctx, joinExpr(args[1:]))

	case "check":
		if len(args) < 2 {
			return fmt.Errorf("usage: jitcalc check <suite.yaml|suite.cue|directory>...")
		}
		return cmdCheck(ctx, args[1:])

	case "demo":
		return cmdDemo(ctx)

	case "help", "--help", "-h":
		return cmdHelp(ctx)

	case "version", "--version", "-V":
		fmt.Fprintln(ctx.Stdout, versionString)
		return nil

	default:
		// Anything else is an expression, as long as it could be one
		if strings.ContainsAny(subcmd, "0123456789(") {
			return cmdRun(ctx, joinExpr(args))
		}
		return fmt.Errorf("unknown command: %s\n\nRun 'jitcalc help' for usage information", subcmd)
	}
}

// joinExpr lets an expression be given unquoted: jitcalc run 5 + 10
func joinExpr(args []string) string {
	return strings.Join(args, " ")
}

// cmdRun compiles an expression to native code, runs it and prints the result
func cmdRun(ctx *CommandContext, expr string) error {
	compiler := jit.NewCompiler(ctx.Options)
	result, err := compiler.CompileAndRun(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, result)

	if ctx.Oracle {
		if want, ok := conformance.NewOracle().Eval(expr); ok && want != result {
			return fmt.Errorf("oracle computed %d, native code returned %d", want, result)
		} else if ok && ctx.Verbose {
			fmt.Fprintln(ctx.Stderr, "oracle agrees")
		}
	}
	return nil
}

// cmdEval evaluates the expression tree without generating code
func cmdEval(ctx *CommandContext, expr string) error {
	tree, err := jit.Parse(expr, ctx.Options)
	if err != nil {
		return err
	}
	result, err := jit.Eval(tree)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, result)
	return nil
}

// cmdDump prints the generated machine code and the tree it was built from
func cmdDump(ctx *CommandContext, expr string) error {
	opts := ctx.Options
	if ctx.Verbose {
		opts.Trace = ctx.Stdout
		fmt.Fprintln(ctx.Stdout, "code:")
	}

	prog, err := jit.NewCompiler(opts).Compile(expr)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		fmt.Fprintf(ctx.Stdout, "tree: %s\n", prog.Tree)
		fmt.Fprint(ctx.Stdout, jit.Dump(prog.Tree))
		fmt.Fprintf(ctx.Stdout, "bytes: %d, spill depth: %d, pushes: %d, pops: %d\n",
			len(prog.Code), prog.SpillDepth, prog.Pushes, prog.Pops)
	}
	fmt.Fprintf(ctx.Stdout, "%x\n", prog.Code)
	return nil
}

// cmdCheck loads case tables from files or directories and runs them
func cmdCheck(ctx *CommandContext, paths []string) error {
	var suites []*conformance.Suite
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			found, err := conformance.LoadDir(path)
			if err != nil {
				return err
			}
			suites = append(suites, found...)
			continue
		}
		suite, err := conformance.LoadFile(path)
		if err != nil {
			return err
		}
		suites = append(suites, suite)
	}
	return runSuites(ctx, suites)
}

// cmdDemo runs the built-in demonstration table
func cmdDemo(ctx *CommandContext) error {
	return runSuites(ctx, []*conformance.Suite{conformance.Demo()})
}

func runSuites(ctx *CommandContext, suites []*conformance.Suite) error {
	runner := &conformance.Runner{
		Options: ctx.Options,
		Logger:  ctx.Options.Logger,
	}
	if ctx.Oracle {
		runner.Oracle = conformance.NewOracle()
	}

	var totalPassed, totalFailed, totalSkipped int
	for _, suite := range suites {
		results := runner.RunSuite(suite)
		for _, res := range results {
			switch {
			case res.Skipped:
				if ctx.Verbose {
					fmt.Fprintf(ctx.Stdout, "SKIP  %s/%s: %s\n", suite.Name, res.Case.Title(), res.Reason)
				}
			case res.Passed:
				if !ctx.Quiet {
					fmt.Fprintf(ctx.Stdout, "ok    %s/%s: %s = %s\n", suite.Name, res.Case.Title(), res.Case.Expr, outcome(res))
				}
			default:
				fmt.Fprintf(ctx.Stdout, "FAIL  %s/%s: %s\n", suite.Name, res.Case.Title(), res.Reason)
			}
		}
		passed, failed, skipped := conformance.Summary(results)
		totalPassed += passed
		totalFailed += failed
		totalSkipped += skipped
	}

	if !ctx.Quiet {
		fmt.Fprintf(ctx.Stdout, "\n%d passed, %d failed, %d skipped (%s)\n",
			totalPassed, totalFailed, totalSkipped, engine.HostPlatform())
	}
	if totalFailed > 0 {
		return errChecksFailed
	}
	return nil
}

func outcome(res conformance.Result) string {
	if res.Err != nil {
		if kind, ok := jit.KindOf(res.Err); ok {
			return kind.String() + " error"
		}
		return "error"
	}
	return fmt.Sprint(res.Got)
}

// cmdHelp displays usage information
func cmdHelp(ctx *CommandContext) error {
	fmt.Fprintf(ctx.Stdout, `%s - JIT compiler for integer arithmetic

USAGE:
    jitcalc [flags] <command> [arguments]

COMMANDS:
    run <expr>            Compile an expression to x86_64 code and run it
    eval <expr>           Evaluate an expression without generating code
    dump <expr>           Show the expression tree and the generated code
    check <suite>...      Run case tables (.yaml, .yml, .cue or a directory)
    demo                  Run the demonstration expressions
    help                  Show this help message
    version               Show version information

SHORTHAND:
    jitcalc "5 + 10"      Same as 'jitcalc run "5 + 10"'

FLAGS (must come before the command):
    -c <expr>             Compile and run an expression
    -v, -verbose          Trace emitted instructions, log at debug level
    -q                    Print only results
    -div                  Enable native signed division
    -lenient              Accept a missing ')' and ignore trailing tokens
    -oracle               Cross-check results with the Starlark interpreter

ENVIRONMENT:
    JIT_VERBOSE, JIT_DIVISION, JIT_LENIENT   Defaults for -v, -div and -lenient
    JIT_BUFFER_SIZE                          Initial code buffer capacity
    JIT_MAX_DEPTH                            Maximum parenthesis nesting
    JIT_LOG_LEVEL                            debug, info, warn or error

EXAMPLES:
    jitcalc run "(5 + 10) * 2"
    jitcalc -div run "100 / 7"
    jitcalc -v dump "10 + 5 * 2"
    jitcalc -oracle check conformance/testdata

`, versionString)
	return nil
}
