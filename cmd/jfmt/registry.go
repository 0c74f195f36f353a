package main

import (
	"errors"
	"fmt"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/config"
	"github.com/alnah/go-jfmt/internal/fileutil"
	"github.com/alnah/go-jfmt/internal/hints"
	"github.com/alnah/go-jfmt/internal/store"
)

// Sentinel errors for format selection.
var (
	ErrNoFormatSelected = errors.New("no journal format selected")
	ErrStdoutBatch      = errors.New("stdout output requires a single input file")
)

// loadConfiguration loads the named config file, or defaults when no name
// is given. Lookup failures for a bare name gain a hint listing the
// searched locations.
func loadConfiguration(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openRegistry builds the journal format registry backed by the sqlite
// store. With no explicit store path configured, an unopenable store at
// the default location degrades to the built-in catalog with a warning;
// a path the user chose is always an error. Commands that write formats
// pass requireStore to fail either way.
func openRegistry(cfg *config.Config, env *Environment, requireStore bool) (*jfmt.Registry, func() error, error) {
	noop := func() error { return nil }

	path := cfg.Store.Path
	explicit := path != ""
	if !explicit {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			if requireStore {
				return nil, nil, fmt.Errorf("resolving format store path: %w", err)
			}
			fmt.Fprintf(env.Stderr, "warning: custom formats disabled: %v\n", err)
			return jfmt.NewRegistry(), noop, nil
		}
	}

	st, err := store.Open(path)
	if err != nil {
		if explicit || requireStore {
			return nil, nil, fmt.Errorf("%w%s", err, hints.ForFormatStore())
		}
		fmt.Fprintf(env.Stderr, "warning: custom formats disabled: %v\n", err)
		return jfmt.NewRegistry(), noop, nil
	}

	return jfmt.NewRegistry(jfmt.WithStore(st)), st.Close, nil
}

// formatIDs returns the IDs of all registered formats, for hint text.
func formatIDs(reg *jfmt.Registry) []string {
	formats := reg.Formats()
	ids := make([]string, len(formats))
	for i, f := range formats {
		ids[i] = f.ID
	}
	return ids
}

// lookupFormat resolves a journal format by id or name, attaching the
// available catalog to failures.
func lookupFormat(reg *jfmt.Registry, selector string) (jfmt.JournalFormat, error) {
	if selector == "" {
		return jfmt.JournalFormat{}, fmt.Errorf("%w%s", ErrNoFormatSelected, hints.ForFormatNotFound(formatIDs(reg)))
	}
	format, err := reg.Lookup(selector)
	if err != nil {
		return jfmt.JournalFormat{}, fmt.Errorf("%w%s", err, hints.ForFormatNotFound(formatIDs(reg)))
	}
	return format, nil
}
