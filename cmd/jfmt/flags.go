package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatDefFlags holds journal format definition flags for "formats add".
// Zero values mean the jfmt defaults apply.
type formatDefFlags struct {
	name        string
	description string
	wordLimit   int
	lineSpacing float64
	refStyle    string
	fontFamily  string
	fontSize    int
	margin      float64
}

// formatFlags holds all flags for the format command.
type formatFlags struct {
	common   commonFlags
	format   string
	output   string
	toStdout bool
	workers  int
	store    string
}

// formatsFlags holds all flags for the formats command.
type formatsFlags struct {
	common commonFlags
	store  string
	custom bool
	file   string
	def    formatDefFlags
}

// extractFlags holds all flags for the extract command.
type extractFlags struct {
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStoreFlag adds the format store override flag to a FlagSet.
func addStoreFlag(fs *flag.FlagSet, p *string) {
	fs.StringVar(p, "store", "", "custom format store path")
}

// addFormatDefFlags adds journal format definition flags to a FlagSet.
func addFormatDefFlags(fs *flag.FlagSet, f *formatDefFlags) {
	fs.StringVar(&f.name, "name", "", "journal name")
	fs.StringVar(&f.description, "description", "", "journal description")
	fs.IntVar(&f.wordLimit, "word-limit", 0, "maximum word count (0 = default)")
	fs.Float64Var(&f.lineSpacing, "line-spacing", 0, "line spacing multiplier (0 = default)")
	fs.StringVar(&f.refStyle, "ref-style", "", "reference style: Vancouver, APA, ...")
	fs.StringVar(&f.fontFamily, "font", "", "font family")
	fs.IntVar(&f.fontSize, "font-size", 0, "font size in points (0 = default)")
	fs.Float64Var(&f.margin, "margin", 0, "page margins in inches (0 = default)")
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string) (*formatFlags, []string, error) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	f := &formatFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "journal format id or name")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.toStdout, "stdout", false, "write formatted text to stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addStoreFlag(fs, &f.store)
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printFormatUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseFormatsFlags parses formats subcommand flags and returns positional args.
func parseFormatsFlags(args []string) (*formatsFlags, []string, error) {
	fs := flag.NewFlagSet("formats", flag.ContinueOnError)
	f := &formatsFlags{}

	fs.BoolVar(&f.custom, "custom", false, "only user-defined formats")
	fs.StringVar(&f.file, "file", "", "YAML file with format definitions")
	addFormatDefFlags(fs, &f.def)
	addStoreFlag(fs, &f.store)
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printFormatsUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string) (*extractFlags, []string, error) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	f := &extractFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	fs.Usage = func() { printExtractUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
