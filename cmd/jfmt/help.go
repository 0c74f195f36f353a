package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-jfmt/internal/extract"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jfmt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format      Format a manuscript for a journal")
	fmt.Fprintln(w, "  formats     Manage journal formats")
	fmt.Fprintln(w, "  extract     Extract plain text from a manuscript")
	fmt.Fprintln(w, "  doctor      Check config, store, and input support")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'jfmt help <command>' for details on a specific command.")
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jfmt format <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format a manuscript to a journal's submission requirements.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Manuscript file, directory, or \"-\" for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintf(w, "           Supported files: %s\n", strings.Join(extract.SupportedExtensions(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Journal:")
	fmt.Fprintln(w, "  -f, --format <id|name>    Journal format (or config journal.default)")
	fmt.Fprintln(w, "      --store <path>        Custom format store path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "      --stdout              Write formatted text to stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  JFMT_CONFIG, JFMT_JOURNAL, JFMT_INPUT_DIR, JFMT_OUTPUT_DIR,")
	fmt.Fprintln(w, "  JFMT_STORE, JFMT_WORKERS (flags win over environment)")
}

// printFormatsUsage prints usage for the formats command.
func printFormatsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jfmt formats <subcommand> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Manage the journal format catalog.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  list           List formats")
	fmt.Fprintln(w, "  add            Add a custom format")
	fmt.Fprintln(w, "  remove <id>    Remove a custom format")
	fmt.Fprintln(w, "  export         Write formats YAML to stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List/Export:")
	fmt.Fprintln(w, "      --custom              Only user-defined formats")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add:")
	fmt.Fprintln(w, "      --file <path>         YAML file with format definitions")
	fmt.Fprintln(w, "      --name <s>            Journal name")
	fmt.Fprintln(w, "      --description <s>     Journal description")
	fmt.Fprintln(w, "      --word-limit <n>      Maximum word count")
	fmt.Fprintln(w, "      --line-spacing <f>    Line spacing multiplier")
	fmt.Fprintln(w, "      --ref-style <s>       Reference style: Vancouver, APA, ...")
	fmt.Fprintln(w, "      --font <s>            Font family")
	fmt.Fprintln(w, "      --font-size <n>       Font size in points")
	fmt.Fprintln(w, "      --margin <f>          Page margins in inches")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no --file and no --name, add prompts interactively.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "      --store <path>        Custom format store path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printExtractUsage prints usage for the extract command.
func printExtractUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jfmt extract <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extract plain text from a manuscript without formatting it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  file    Manuscript file: %s\n", strings.Join(extract.SupportedExtensions(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "format":
		printFormatUsage(env.Stdout)
	case "formats":
		printFormatsUsage(env.Stdout)
	case "extract":
		printExtractUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: jfmt doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check config resolution, format store, and input support.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: jfmt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: jfmt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
