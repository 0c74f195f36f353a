package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// hasVerboseFlag scans raw args before command dispatch parses them.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to command handlers and returns an exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "format":
		return runFormatCmd(args[2:], env)
	case "formats":
		return runFormatsCmd(args[2:], env)
	case "extract":
		return runExtractCmd(args[2:], env)
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "completion":
		return runCompletionCmd(args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "go-jfmt %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(args[2:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
