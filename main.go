// Completion: 100% - Entry point complete
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xyproto/env/v2"
	"github.com/xyproto/jitcalc/internal/jit"
	"github.com/xyproto/jitcalc/internal/logs"
)

// A tiny JIT compiler for integer arithmetic on x86_64 Linux, macOS and FreeBSD

const versionString = "jitcalc 1.0.0"

func main() {
	defaults := jit.DefaultOptions()

	// NOTE: Go's flag package stops parsing at the first non-flag argument
	// So flags must come BEFORE the command: jitcalc -div run "10 / 2"
	var versionShort = flag.Bool("V", false, "print version information and exit")
	var version = flag.Bool("version", false, "print version information and exit")
	var verbose = flag.Bool("v", defaults.Verbose, "verbose mode (trace emitted instructions, log at debug level)")
	var verboseLong = flag.Bool("verbose", defaults.Verbose, "verbose mode (trace emitted instructions, log at debug level)")
	var quiet = flag.Bool("q", false, "quiet mode (print only results)")
	var division = flag.Bool("div", defaults.Division, "enable native signed division")
	var lenient = flag.Bool("lenient", defaults.Lenient, "accept a missing ')' and ignore trailing tokens")
	var oracle = flag.Bool("oracle", false, "cross-check results with the Starlark interpreter")
	var codeFlag = flag.String("c", "", "compile and run an expression from the command line")
	flag.Parse()

	if *version || *versionShort {
		fmt.Println(versionString)
		os.Exit(0)
	}

	verboseMode := *verbose || *verboseLong

	level := logs.LevelFromEnv()
	if verboseMode {
		level = slog.LevelDebug
	}

	opts := defaults
	opts.Division = *division
	opts.Lenient = *lenient
	opts.Verbose = verboseMode
	opts.Logger = logs.New(os.Stderr, level)

	args := flag.Args()
	if *codeFlag != "" {
		args = []string{"run", *codeFlag}
	}

	ctx := NewCommandContext(args, opts, verboseMode, *quiet, *oracle)
	if err := RunCLI(ctx); err != nil {
		var cerr *jit.CompileError
		if errors.As(err, &cerr) {
			fmt.Fprint(os.Stderr, cerr.Format(useColor()))
		} else if !errors.Is(err, errChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// useColor reports whether stderr is a terminal and NO_COLOR is unset
func useColor() bool {
	if env.Str("NO_COLOR") != "" {
		return false
	}
	fi, err := os.Stderr.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
