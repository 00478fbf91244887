package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength  = 200  // Document title
	MaxAuthorLength = 100  // Author name
	MaxDateLength   = 30   // "2025-12-31" or "auto:MMMM D, YYYY"
	MaxLangLength   = 35   // BCP 47 tags stay well under this
	MaxStyleLength  = 4096 // Name, path, or a short inline stylesheet
	MaxPathLength   = 4096 // Directory paths
	MaxAddrLength   = 256  // host:port
	MaxOriginLength = 2048 // Browser URL limit
)

// Serve bounds.
const (
	DefaultServeAddr      = ":8423"
	DefaultLogLevel       = "info"
	DefaultMaxRenderBytes = 1 << 20  // 1MB of markdown per render request
	MaxRenderBytesLimit   = 64 << 20 // Hard ceiling for the configurable cap
)

// Config holds all configuration for HTML generation and the editor server.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	CSS      CSSConfig      `yaml:"css"`
	Assets   AssetsConfig   `yaml:"assets"`
	Serve    ServeConfig    `yaml:"serve"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig defines the fields of the wrapped HTML document.
type DocumentConfig struct {
	Title       string `yaml:"title"`       // Empty = first heading, then filename
	Author      string `yaml:"author"`      // Author meta tag (empty = omitted)
	Date        string `yaml:"date"`        // Literal, "auto", or "auto:FORMAT" (empty = omitted)
	Lang        string `yaml:"lang"`        // html lang attribute (empty = omitted)
	Fragment    bool   `yaml:"fragment"`    // Emit fragments only, no document wrap
	FrontMatter bool   `yaml:"frontMatter"` // Parse leading YAML front matter (default: true)
}

// CSSConfig defines CSS styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, CSS file path, or inline CSS (empty = no CSS)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ServeConfig defines editor server options.
type ServeConfig struct {
	Addr           string   `yaml:"addr"`           // Listen address (default: ":8423")
	AllowedOrigins []string `yaml:"allowedOrigins"` // CORS origins (empty = allow all)
	LogLevel       string   `yaml:"logLevel"`       // debug, info, warn, error (default: info)
	MaxRenderBytes int      `yaml:"maxRenderBytes"` // Render request cap (default: 1MB)
}

// Validate checks field lengths and enumerated values. Called automatically
// by LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"document.lang", c.Document.Lang, MaxLangLength},
		{"css.style", c.CSS.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"serve.addr", c.Serve.Addr, MaxAddrLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for i, origin := range c.Serve.AllowedOrigins {
		name := fmt.Sprintf("serve.allowedOrigins[%d]", i)
		if err := validateFieldLength(name, origin, MaxOriginLength); err != nil {
			return err
		}
	}

	if c.Serve.LogLevel != "" {
		switch strings.ToLower(c.Serve.LogLevel) {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return fmt.Errorf("%w: serve.logLevel %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Serve.LogLevel)
		}
	}

	if c.Serve.MaxRenderBytes < 0 || c.Serve.MaxRenderBytes > MaxRenderBytesLimit {
		return fmt.Errorf("%w: serve.maxRenderBytes %d (must be between 0 and %d)", ErrInvalidValue, c.Serve.MaxRenderBytes, MaxRenderBytesLimit)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the baseline configuration: front matter on,
// everything else neutral, serve on its default port.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{FrontMatter: true},
		Serve: ServeConfig{
			Addr:           DefaultServeAddr,
			LogLevel:       DefaultLogLevel,
			MaxRenderBytes: DefaultMaxRenderBytes,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
//
// The file is overlaid on DefaultConfig, so keys absent from the YAML
// keep their default values. Unknown keys are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name,
// in order. Useful for error hints.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2html", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard
// locations: current directory first, then the user config directory,
// trying .yaml before .yml in each.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
