package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	jfmt "github.com/alnah/go-jfmt"
	"github.com/alnah/go-jfmt/internal/config"
	"github.com/alnah/go-jfmt/internal/extract"
	"github.com/alnah/go-jfmt/internal/fileutil"
	"github.com/alnah/go-jfmt/internal/store"
)

// defaultConfigName is the config file base name doctor probes for.
const defaultConfigName = "jfmt"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Config   configInfo  `json:"config"`
	Store    storeInfo   `json:"store"`
	Formats  formatsInfo `json:"formats"`
	Inputs   []string    `json:"supported_inputs"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// configInfo holds config file detection results.
type configInfo struct {
	Found    bool     `json:"found"`
	Path     string   `json:"path,omitempty"`
	Searched []string `json:"searched,omitempty"`
}

// storeInfo holds format store check results.
type storeInfo struct {
	Path     string `json:"path"`
	Openable bool   `json:"openable"`
}

// formatsInfo holds format catalog counts.
type formatsInfo struct {
	Builtin int `json:"builtin"`
	Custom  int `json:"custom"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Inputs: extract.SupportedExtensions(),
	}

	cfg := checkConfig(result)
	applyEnvConfig(loadEnvConfig(), cfg)
	checkStore(result, cfg)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig probes the config search paths and loads the first hit.
// Returns defaults when no config file exists; that is not a problem.
func checkConfig(result *doctorResult) *config.Config {
	name := os.Getenv("JFMT_CONFIG")
	if name == "" {
		name = defaultConfigName
	}

	result.Config.Searched = config.SearchPaths(name)
	for _, path := range result.Config.Searched {
		if fileutil.FileExists(path) {
			result.Config.Found = true
			result.Config.Path = path
			break
		}
	}

	if !result.Config.Found {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(result.Config.Path)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Config file %s is invalid: %v", result.Config.Path, err))
		return config.DefaultConfig()
	}
	return cfg
}

// checkStore opens the format store and counts the catalog.
func checkStore(result *doctorResult, cfg *config.Config) {
	path := cfg.Store.Path
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Cannot resolve default store path: %v", err))
			countFormats(result, jfmt.NewRegistry())
			return
		}
	}
	result.Store.Path = path

	st, err := store.Open(path)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Format store %s cannot be opened: %v", path, err))
		countFormats(result, jfmt.NewRegistry())
		return
	}
	defer func() { _ = st.Close() }()
	result.Store.Openable = true

	if _, err := st.Load(); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Format store %s holds unreadable data: %v", path, err))
	}
	countFormats(result, jfmt.NewRegistry(jfmt.WithStore(st)))
}

// countFormats records catalog sizes from a registry.
func countFormats(result *doctorResult, reg *jfmt.Registry) {
	result.Formats.Custom = len(reg.UserFormats())
	result.Formats.Builtin = len(reg.Formats()) - result.Formats.Custom
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "jfmt doctor")
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Config")
	if r.Config.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Config.Path)
	} else {
		fmt.Fprintln(w, "  [OK] No config file, using defaults")
	}
	fmt.Fprintln(w)

	// Store section
	fmt.Fprintln(w, "Format store")
	if r.Store.Openable {
		fmt.Fprintf(w, "  [OK] Openable at %s\n", r.Store.Path)
	} else {
		fmt.Fprintf(w, "  [ERROR] Not openable at %s\n", r.Store.Path)
	}
	fmt.Fprintf(w, "  [OK] Formats: %d built-in, %d custom\n", r.Formats.Builtin, r.Formats.Custom)
	fmt.Fprintln(w)

	// Input section
	fmt.Fprintln(w, "Input types")
	fmt.Fprintf(w, "  [OK] Supported: %s\n", strings.Join(r.Inputs, ", "))
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to format")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
