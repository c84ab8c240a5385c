package main

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmdArgs := args[1:]
	switch cmdArgs[0] {
	case "version":
		fmt.Fprintf(env.Stdout, "paper %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(cmdArgs[1:], env)
		return ExitSuccess
	case "build":
		cmdArgs = cmdArgs[1:]
	}

	flags, positional, err := parseBuildFlags(cmdArgs)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if flags.help {
		printBuildUsage(env.Stdout)
		return ExitSuccess
	}

	ctx, stop := notifyContext(env.Context())
	defer stop()

	if err := runBuild(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a subcommand rather than a source.
func isCommand(arg string) bool {
	switch arg {
	case "build", "version", "help":
		return true
	default:
		return false
	}
}
