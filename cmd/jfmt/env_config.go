package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-jfmt/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // JFMT_CONFIG: config file name or path
	Journal    string // JFMT_JOURNAL: default journal format id or name
	InputDir   string // JFMT_INPUT_DIR: default input directory
	OutputDir  string // JFMT_OUTPUT_DIR: default output directory
	StorePath  string // JFMT_STORE: custom format store path
	Workers    int    // JFMT_WORKERS: parallel workers
}

// knownEnvVars lists valid JFMT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"JFMT_CONFIG":     true,
	"JFMT_JOURNAL":    true,
	"JFMT_INPUT_DIR":  true,
	"JFMT_OUTPUT_DIR": true,
	"JFMT_STORE":      true,
	"JFMT_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized JFMT_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("JFMT_CONFIG"),
		Journal:    os.Getenv("JFMT_JOURNAL"),
		InputDir:   os.Getenv("JFMT_INPUT_DIR"),
		OutputDir:  os.Getenv("JFMT_OUTPUT_DIR"),
		StorePath:  os.Getenv("JFMT_STORE"),
	}

	if workers := os.Getenv("JFMT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized JFMT_* variables.
// Helps catch typos like JFMT_JORNAL instead of JFMT_JOURNAL.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "JFMT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Journal != "" && cfg.Journal.Default == "" {
		cfg.Journal.Default = env.Journal
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.StorePath != "" && cfg.Store.Path == "" {
		cfg.Store.Path = env.StorePath
	}
}

// resolveWorkersWithEnv resolves the worker count with priority:
// CLI flag > JFMT_WORKERS > auto.
func resolveWorkersWithEnv(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}
	return 0
}
