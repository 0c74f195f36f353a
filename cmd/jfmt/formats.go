package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/config"
	"github.com/alnah/go-jfmt/internal/hints"
	"github.com/alnah/go-jfmt/internal/yamlutil"
)

// runFormatsCmd executes a formats subcommand and returns an exit code.
func runFormatsCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printFormatsUsage(env.Stderr)
		return ExitUsage
	}

	sub := args[0]
	flags, positional, err := parseFormatsFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfiguration(configName)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	applyEnvConfig(envCfg, cfg)
	if flags.store != "" {
		cfg.Store.Path = flags.store
	}

	// Only mutating subcommands insist on a working store
	requireStore := sub == "add" || sub == "remove"
	reg, closeStore, err := openRegistry(cfg, env, requireStore)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	defer func() { _ = closeStore() }()

	switch sub {
	case "list":
		err = runFormatsList(reg, flags, env)
	case "add":
		err = runFormatsAdd(reg, flags, env)
	case "remove":
		if len(positional) == 0 {
			fmt.Fprintln(env.Stderr, "Usage: jfmt formats remove <id>")
			return ExitUsage
		}
		err = runFormatsRemove(reg, positional[0], env)
	case "export":
		err = runFormatsExport(reg, flags, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown formats subcommand: %s\n\n", sub)
		printFormatsUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runFormatsList prints the format catalog as an aligned table.
func runFormatsList(reg *jfmt.Registry, flags *formatsFlags, env *Environment) error {
	formats := reg.Formats()
	if flags.custom {
		formats = reg.UserFormats()
	}

	w := tabwriter.NewWriter(env.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tWORDS\tSPACING\tSTYLE\tSOURCE")
	for _, f := range formats {
		source := "built-in"
		if !reg.IsBuiltin(f.ID) {
			source = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%s\t%s\n",
			f.ID, f.Name, f.WordLimit, f.LineSpacing, f.ReferenceStyle, source)
	}
	return w.Flush()
}

// runFormatsAdd registers new formats from a YAML file, from flags, or
// interactively when neither --file nor --name is given.
func runFormatsAdd(reg *jfmt.Registry, flags *formatsFlags, env *Environment) error {
	var candidates []jfmt.JournalFormat

	switch {
	case flags.file != "":
		records, err := config.LoadFormats(flags.file)
		if err != nil {
			return err
		}
		for _, rec := range records {
			candidates = append(candidates, formatFromRecord(rec))
		}
	case flags.def.name != "":
		candidates = append(candidates, formatFromFlags(flags.def))
	default:
		candidate, err := promptFormat(&surveyPrompter{})
		if err != nil {
			return err
		}
		candidates = append(candidates, candidate)
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return fmt.Errorf("format %q: %w", candidate.Name, err)
		}
		registered, err := reg.Register(candidate)
		if err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Added %s (%s)\n", registered.Name, registered.ID)
		}
	}
	return nil
}

// runFormatsRemove deletes a user format by ID.
func runFormatsRemove(reg *jfmt.Registry, id string, env *Environment) error {
	if err := reg.Remove(id); err != nil {
		if errors.Is(err, jfmt.ErrBuiltinFormat) {
			return fmt.Errorf("%w%s", err, hints.ForBuiltinRemove())
		}
		if errors.Is(err, jfmt.ErrUnknownFormat) {
			return fmt.Errorf("%w%s", err, hints.ForFormatNotFound(userFormatIDs(reg)))
		}
		return err
	}
	fmt.Fprintf(env.Stdout, "Removed %s\n", id)
	return nil
}

// runFormatsExport writes the catalog as formats YAML to stdout.
func runFormatsExport(reg *jfmt.Registry, flags *formatsFlags, env *Environment) error {
	formats := reg.Formats()
	if flags.custom {
		formats = reg.UserFormats()
	}

	file := config.FormatFile{Formats: make([]config.FormatRecord, len(formats))}
	for i, f := range formats {
		file.Formats[i] = recordFromFormat(f)
	}

	data, err := yamlutil.Marshal(file)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}

// userFormatIDs returns the IDs of user-created formats, for hint text.
func userFormatIDs(reg *jfmt.Registry) []string {
	user := reg.UserFormats()
	ids := make([]string, len(user))
	for i, f := range user {
		ids[i] = f.ID
	}
	return ids
}

// applyFormatDefaults fills zero-valued fields with the jfmt defaults, the
// same ones the interactive prompts offer.
func applyFormatDefaults(f *jfmt.JournalFormat) {
	if f.WordLimit == 0 {
		f.WordLimit = jfmt.DefaultWordLimit
	}
	if f.LineSpacing == 0 {
		f.LineSpacing = jfmt.DefaultLineSpacing
	}
	if f.ReferenceStyle == "" {
		f.ReferenceStyle = jfmt.StyleAPA
	}
	if canonical, ok := jfmt.CanonicalReferenceStyle(f.ReferenceStyle); ok {
		f.ReferenceStyle = canonical
	}
	if f.FontFamily == "" {
		f.FontFamily = jfmt.DefaultFontFamily
	}
	if f.FontSize == 0 {
		f.FontSize = jfmt.DefaultFontSize
	}
	if f.Margins.Top == 0 {
		f.Margins.Top = jfmt.DefaultMargin
	}
	if f.Margins.Bottom == 0 {
		f.Margins.Bottom = jfmt.DefaultMargin
	}
	if f.Margins.Left == 0 {
		f.Margins.Left = jfmt.DefaultMargin
	}
	if f.Margins.Right == 0 {
		f.Margins.Right = jfmt.DefaultMargin
	}
}

// formatFromRecord builds a registration candidate from a YAML record.
func formatFromRecord(rec config.FormatRecord) jfmt.JournalFormat {
	f := jfmt.JournalFormat{
		Name:           rec.Name,
		Description:    rec.Description,
		LineSpacing:    rec.LineSpacing,
		WordLimit:      rec.WordLimit,
		ReferenceStyle: rec.ReferenceStyle,
		FontFamily:     rec.FontFamily,
		FontSize:       rec.FontSize,
		Margins: jfmt.Margins{
			Top:    rec.Margins.Top,
			Bottom: rec.Margins.Bottom,
			Left:   rec.Margins.Left,
			Right:  rec.Margins.Right,
		},
	}
	applyFormatDefaults(&f)
	return f
}

// formatFromFlags builds a registration candidate from definition flags.
func formatFromFlags(def formatDefFlags) jfmt.JournalFormat {
	f := jfmt.JournalFormat{
		Name:           def.name,
		Description:    def.description,
		LineSpacing:    def.lineSpacing,
		WordLimit:      def.wordLimit,
		ReferenceStyle: def.refStyle,
		FontFamily:     def.fontFamily,
		FontSize:       def.fontSize,
		Margins: jfmt.Margins{
			Top:    def.margin,
			Bottom: def.margin,
			Left:   def.margin,
			Right:  def.margin,
		},
	}
	applyFormatDefaults(&f)
	return f
}

// recordFromFormat converts a registered format to its YAML record.
// IDs are dropped: re-importing assigns fresh ones.
func recordFromFormat(f jfmt.JournalFormat) config.FormatRecord {
	return config.FormatRecord{
		Name:           f.Name,
		Description:    f.Description,
		LineSpacing:    f.LineSpacing,
		WordLimit:      f.WordLimit,
		ReferenceStyle: f.ReferenceStyle,
		FontFamily:     f.FontFamily,
		FontSize:       f.FontSize,
		Margins: config.MarginsRecord{
			Top:    f.Margins.Top,
			Bottom: f.Margins.Bottom,
			Left:   f.Margins.Left,
			Right:  f.Margins.Right,
		},
	}
}
