package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// defaultConfigName is the config name doctor probes when MD2HTML_CONFIG
// is not set.
const defaultConfigName = "md2html"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Assets   assetsInfo `json:"assets"`
	Config   configInfo `json:"config"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// assetsInfo holds asset availability results.
type assetsInfo struct {
	EmbeddedStyles []string `json:"embedded_styles"`
	EditorTemplate bool     `json:"editor_template"`
	CustomDir      string   `json:"custom_dir,omitempty"`
	CustomDirOK    bool     `json:"custom_dir_ok,omitempty"`
}

// configInfo holds configuration detection results.
type configInfo struct {
	Path    string   `json:"path,omitempty"`     // resolved config file, if any
	EnvVars []string `json:"env_vars,omitempty"` // MD2HTML_* variables set
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
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

	result := runDoctor(env)

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
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkConfig(result)
	checkAssets(result, env)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig resolves the active config file and inspects MD2HTML_*
// environment variables.
func checkConfig(result *doctorResult) {
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "MD2HTML_") {
			continue
		}
		name := strings.SplitN(e, "=", 2)[0]
		result.Config.EnvVars = append(result.Config.EnvVars, name)
		if !knownEnvVars[name] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unknown environment variable %s (typo?)", name))
		}
	}
	sort.Strings(result.Config.EnvVars)

	name := os.Getenv("MD2HTML_CONFIG")
	if name == "" {
		name = defaultConfigName
	}

	var found string
	for _, p := range config.SearchPaths(name) {
		if fileutil.FileExists(p) {
			found = p
			break
		}
	}
	if found == "" {
		return
	}
	result.Config.Path = found

	cfg, err := config.LoadConfig(found)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Config %s does not load: %v", found, err))
		return
	}

	if cfg.Assets.BasePath != "" {
		result.Assets.CustomDir = cfg.Assets.BasePath
		if _, err := assets.NewAssetResolver(cfg.Assets.BasePath); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Custom asset directory %s is unusable: %v", cfg.Assets.BasePath, err))
		} else {
			result.Assets.CustomDirOK = true
		}
	}
}

// checkAssets verifies embedded styles and the editor template.
func checkAssets(result *doctorResult, env *Environment) {
	result.Assets.EmbeddedStyles = md2html.BuiltinStyles()
	if len(result.Assets.EmbeddedStyles) == 0 {
		result.Errors = append(result.Errors, "No embedded styles found")
	}

	if _, err := env.AssetLoader.LoadTemplate("editor"); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Editor template does not load: %v", err))
	} else {
		result.Assets.EditorTemplate = true
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	// Check temp directory is writable
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "md2html-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2html doctor")
	fmt.Fprintln(w)

	// Assets section
	fmt.Fprintln(w, "Assets")
	if len(r.Assets.EmbeddedStyles) > 0 {
		fmt.Fprintf(w, "  [OK] Embedded styles: %s\n", strings.Join(r.Assets.EmbeddedStyles, ", "))
	} else {
		fmt.Fprintln(w, "  [ERROR] Embedded styles: none")
	}
	if r.Assets.EditorTemplate {
		fmt.Fprintln(w, "  [OK] Editor template: loads")
	} else {
		fmt.Fprintln(w, "  [ERROR] Editor template: does not load")
	}
	if r.Assets.CustomDir != "" {
		if r.Assets.CustomDirOK {
			fmt.Fprintf(w, "  [OK] Custom asset directory: %s\n", r.Assets.CustomDir)
		} else {
			fmt.Fprintf(w, "  [ERROR] Custom asset directory: %s\n", r.Assets.CustomDir)
		}
	}
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Config")
	if r.Config.Path != "" {
		fmt.Fprintf(w, "  [OK] Config file: %s\n", r.Config.Path)
	} else {
		fmt.Fprintln(w, "  [OK] Config file: none (defaults in effect)")
	}
	if len(r.Config.EnvVars) > 0 {
		fmt.Fprintf(w, "  [OK] Environment: %s\n", strings.Join(r.Config.EnvVars, ", "))
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
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
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
