package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Style      string // MD2HTML_STYLE: CSS style name or path
	InputDir   string // MD2HTML_INPUT_DIR: default input directory
	OutputDir  string // MD2HTML_OUTPUT_DIR: default output directory
	Lang       string // MD2HTML_LANG: html lang attribute
	Author     string // MD2HTML_AUTHOR: author meta tag
	DocDate    string // MD2HTML_DOC_DATE: document date
	Workers    int    // MD2HTML_WORKERS: parallel workers
	ServeAddr  string // MD2HTML_SERVE_ADDR: editor server address
	LogLevel   string // MD2HTML_LOG_LEVEL: serve log level
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_STYLE":      true,
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_LANG":       true,
	"MD2HTML_AUTHOR":     true,
	"MD2HTML_DOC_DATE":   true,
	"MD2HTML_WORKERS":    true,
	"MD2HTML_SERVE_ADDR": true,
	"MD2HTML_LOG_LEVEL":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2HTML_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Style:      os.Getenv("MD2HTML_STYLE"),
		InputDir:   os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		Lang:       os.Getenv("MD2HTML_LANG"),
		Author:     os.Getenv("MD2HTML_AUTHOR"),
		DocDate:    os.Getenv("MD2HTML_DOC_DATE"),
		ServeAddr:  os.Getenv("MD2HTML_SERVE_ADDR"),
		LogLevel:   os.Getenv("MD2HTML_LOG_LEVEL"),
	}

	// Parse int for workers
	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_AUTOR instead of MD2HTML_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeConvertFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}

	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.Lang != "" && cfg.Document.Lang == "" {
		cfg.Document.Lang = env.Lang
	}
	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
	if env.DocDate != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.DocDate
	}

	if env.ServeAddr != "" && cfg.Serve.Addr == config.DefaultServeAddr {
		cfg.Serve.Addr = env.ServeAddr
	}
	if env.LogLevel != "" && cfg.Serve.LogLevel == config.DefaultLogLevel {
		cfg.Serve.LogLevel = env.LogLevel
	}
}
