package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/extract"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Subcommands []string
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.txt,*.docx")
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"ref-style": {Values: jfmt.ReferenceStyles()},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"file":   {FileGlob: "*.yaml,*.yml"},
	"store":  {FileGlob: "*.db"},

	// Directory flags
	"output": {IsDir: true},
}

// buildFormatFlagSet creates a FlagSet with all format command flags.
// Mirrors the registration in parseFormatFlags.
func buildFormatFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	f := &formatFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "journal format id or name")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.toStdout, "stdout", false, "write formatted text to stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addStoreFlag(fs, &f.store)
	addCommonFlags(fs, &f.common)

	return fs
}

// buildFormatsFlagSet creates a FlagSet with all formats command flags.
// Mirrors the registration in parseFormatsFlags.
func buildFormatsFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("formats", flag.ContinueOnError)
	f := &formatsFlags{}

	fs.BoolVar(&f.custom, "custom", false, "only user-defined formats")
	fs.StringVar(&f.file, "file", "", "YAML file with format definitions")
	addFormatDefFlags(fs, &f.def)
	addStoreFlag(fs, &f.store)
	addCommonFlags(fs, &f.common)

	return fs
}

// buildExtractFlagSet creates a FlagSet with all extract command flags.
func buildExtractFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	f := &extractFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// manuscriptGlob builds the glob pattern for supported manuscript files.
func manuscriptGlob() string {
	exts := extract.SupportedExtensions()
	patterns := make([]string, len(exts))
	for i, ext := range exts {
		patterns[i] = "*" + ext
	}
	return strings.Join(patterns, ",")
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "format",
			Desc:        "Format a manuscript for a journal",
			Flags:       extractFlagsFromFlagSet(buildFormatFlagSet()),
			TakesFiles:  true,
			FilePattern: manuscriptGlob(),
		},
		{
			Name:        "formats",
			Desc:        "Manage journal formats",
			Flags:       extractFlagsFromFlagSet(buildFormatsFlagSet()),
			Subcommands: []string{"list", "add", "remove", "export"},
		},
		{
			Name:        "extract",
			Desc:        "Extract plain text from a manuscript",
			Flags:       extractFlagsFromFlagSet(buildExtractFlagSet()),
			TakesFiles:  true,
			FilePattern: manuscriptGlob(),
		},
		{
			Name: "doctor",
			Desc: "Check config, store, and input support",
		},
		{
			Name:        "completion",
			Desc:        "Generate shell completion script",
			Subcommands: []string{"bash", "zsh", "fish"},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}
}

// GenerateCompletion writes a shell completion script to w.
// Returns an error if the shell is unsupported or the write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}

	fmt.Fprintln(w, "# bash completion for jfmt")
	fmt.Fprintln(w, "_jfmt() {")
	fmt.Fprintln(w, "    local cur prev")
	fmt.Fprintln(w, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(w, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if [[ $COMP_CWORD -eq 1 ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, `    case "${COMP_WORDS[1]}" in`)

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Subcommands) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)

		// Enum flags complete their values after the flag word
		for _, fd := range c.Flags {
			if fd.Type != flagEnum {
				continue
			}
			fmt.Fprintf(w, "        if [[ $prev == --%s ]]; then\n", fd.Long)
			fmt.Fprintf(w, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(fd.Values, " "))
			fmt.Fprintln(w, "            return")
			fmt.Fprintln(w, "        fi")
		}

		fmt.Fprintln(w, "        if [[ $cur == -* ]]; then")
		fmt.Fprintf(w, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(bashFlagWords(c.Flags), " "))
		if len(c.Subcommands) > 0 {
			fmt.Fprintln(w, "        else")
			fmt.Fprintf(w, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Subcommands, " "))
		}
		fmt.Fprintln(w, "        fi")
		fmt.Fprintln(w, "        ;;")
	}

	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "complete -o default -F _jfmt jfmt")
	return nil
}

// bashFlagWords lists the flag words (long and short) for compgen.
func bashFlagWords(flags []flagDef) []string {
	var words []string
	for _, fd := range flags {
		words = append(words, "--"+fd.Long)
		if fd.Short != "" {
			words = append(words, "-"+fd.Short)
		}
	}
	return words
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "#compdef jfmt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_jfmt() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range commands {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "        _describe -t commands 'jfmt command' commands")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case $words[2] in")

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Subcommands) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(w, "    %s)\n", c.Name)
		fmt.Fprintln(w, "        _arguments \\")

		var specs []string
		for _, fd := range c.Flags {
			specs = append(specs, zshArgSpec(fd))
		}
		if len(c.Subcommands) > 0 {
			specs = append(specs, fmt.Sprintf("'1:subcommand:(%s)'", strings.Join(c.Subcommands, " ")))
		}
		if c.TakesFiles {
			specs = append(specs, fmt.Sprintf("'*:file:_files -g \"%s\"'", zshGlob(c.FilePattern)))
		}
		fmt.Fprintf(w, "            %s\n", strings.Join(specs, " \\\n            "))
		fmt.Fprintln(w, "        ;;")
	}

	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, `_jfmt "$@"`)
	return nil
}

// zshArgSpec renders one _arguments spec for a flag.
func zshArgSpec(fd flagDef) string {
	spec := fmt.Sprintf("'--%s[%s]", fd.Long, fd.Desc)
	switch fd.Type {
	case flagEnum:
		spec += fmt.Sprintf(":%s:(%s)", fd.Long, strings.Join(fd.Values, " "))
	case flagFile:
		spec += fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(fd.FileGlob))
	case flagDir:
		spec += ":directory:_files -/"
	case flagBool:
		// no argument
	default:
		spec += fmt.Sprintf(":%s:", fd.Long)
	}
	return spec + "'"
}

// zshGlob converts a comma-separated glob list to zsh alternation.
// "*.yaml,*.yml" becomes "*.(yaml|yml)".
func zshGlob(globs string) string {
	parts := strings.Split(globs, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	if len(exts) == 1 {
		return "*." + exts[0]
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()

	fmt.Fprintln(w, "# fish completion for jfmt")
	fmt.Fprintln(w, "complete -c jfmt -f")
	for _, c := range commands {
		fmt.Fprintf(w, "complete -c jfmt -n __fish_use_subcommand -a %s -d '%s'\n", c.Name, c.Desc)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(w, "complete -c jfmt -n '__fish_seen_subcommand_from %s' -a %s\n", c.Name, sub)
		}
		for _, fd := range c.Flags {
			line := fmt.Sprintf("complete -c jfmt -n '__fish_seen_subcommand_from %s' -l %s", c.Name, fd.Long)
			if fd.Short != "" {
				line += " -s " + fd.Short
			}
			switch fd.Type {
			case flagBool:
				// no argument
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(fd.Values, " "))
			case flagFile, flagDir:
				line += " -r"
			default:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'", fd.Desc)
			fmt.Fprintln(w, line)
		}
		if c.TakesFiles {
			fmt.Fprintf(w, "complete -c jfmt -n '__fish_seen_subcommand_from %s' -F\n", c.Name)
		}
	}
	return nil
}

// runCompletionCmd handles the completion command.
func runCompletionCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	}

	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jfmt completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash    Bash completion script")
	fmt.Fprintln(w, "  zsh     Zsh completion script")
	fmt.Fprintln(w, "  fish    Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(jfmt completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(jfmt completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    jfmt completion fish > ~/.config/fish/completions/jfmt.fish")
}
