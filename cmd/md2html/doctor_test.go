package main

// Notes:
// - Tests use black-box approach: testing through runDoctorCmd() observable outputs
// - Environment variable tests use t.Setenv and cannot run in parallel
// - Config file detection depends on host search paths, so status assertions
//   stay tolerant: we verify consistency, not an exact status
// - Internal checks (checkConfig, checkAssets, checkSystem) are verified
//   through command output rather than called directly

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/assets"
)

// decodeDoctorJSON runs doctor with --json and decodes the report.
func decodeDoctorJSON(t *testing.T, env *Environment, stdout *bytes.Buffer) (*doctorResult, int) {
	t.Helper()

	exitCode := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput was: %s", err, stdout.String())
	}
	return &result, exitCode
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - Verifies JSON output format and structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	result, exitCode := decodeDoctorJSON(t, env, stdout)

	if result.System.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", result.System.OS, runtime.GOOS)
	}
	if result.System.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", result.System.Arch, runtime.GOARCH)
	}

	validStatuses := map[string]bool{"ready": true, "warnings": true, "errors": true}
	if !validStatuses[result.Status] {
		t.Errorf("invalid status %q, expected ready/warnings/errors", result.Status)
	}

	// Exit code should be consistent with status
	if result.Status == "errors" && exitCode != ExitGeneral {
		t.Errorf("expected exit code %d for errors status, got %d", ExitGeneral, exitCode)
	}
	if result.Status != "errors" && exitCode != ExitSuccess {
		t.Errorf("expected exit code %d for non-error status, got %d", ExitSuccess, exitCode)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Verifies human-readable output format
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	runDoctorCmd([]string{}, env)

	output := stdout.String()

	requiredSections := []string{
		"md2html doctor",
		"Assets",
		"Config",
		"System",
		"Status:",
	}
	for _, section := range requiredSections {
		if !strings.Contains(output, section) {
			t.Errorf("output should contain section %q", section)
		}
	}

	platformStr := runtime.GOOS + "/" + runtime.GOARCH
	if !strings.Contains(output, platformStr) {
		t.Errorf("output should contain platform %q", platformStr)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctor_Assets - Embedded assets are available
// ---------------------------------------------------------------------------

func TestRunDoctor_Assets(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	result := runDoctor(env)

	if !result.Assets.EditorTemplate {
		t.Error("embedded editor template should load")
	}

	var found bool
	for _, s := range result.Assets.EmbeddedStyles {
		if s == "document" {
			found = true
		}
	}
	if !found {
		t.Errorf("embedded styles = %v, should contain document", result.Assets.EmbeddedStyles)
	}

	if !result.System.TempWritable {
		t.Error("temp directory should be writable")
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_BrokenAssets - Missing editor template is an error
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_BrokenAssets(t *testing.T) {
	t.Parallel()

	// A filesystem loader over an empty directory has no editor template.
	loader, err := assets.NewFilesystemLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystemLoader: %v", err)
	}

	env, stdout, _ := testEnv()
	env.AssetLoader = loader

	result, exitCode := decodeDoctorJSON(t, env, stdout)

	if result.Status != "errors" {
		t.Errorf("status = %q, want errors", result.Status)
	}
	if exitCode != ExitGeneral {
		t.Errorf("exit code = %d, want %d", exitCode, ExitGeneral)
	}
	if result.Assets.EditorTemplate {
		t.Error("editor template should not load from an empty directory")
	}

	var found bool
	for _, e := range result.Errors {
		if strings.Contains(e, "Editor template") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, should mention the editor template", result.Errors)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_UnknownEnvVar - Typo detection for MD2HTML_* variables
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_UnknownEnvVar(t *testing.T) {
	// No t.Parallel: modifies environment variables.
	t.Setenv("MD2HTML_AUTOR", "jane")

	env, stdout, _ := testEnv()
	result, exitCode := decodeDoctorJSON(t, env, stdout)

	var found bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "MD2HTML_AUTOR") && strings.Contains(w, "typo?") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, should flag MD2HTML_AUTOR as a possible typo", result.Warnings)
	}

	// Warnings alone never fail the command.
	if exitCode != ExitSuccess && result.Status != "errors" {
		t.Errorf("exit code = %d, want %d for warnings", exitCode, ExitSuccess)
	}

	var listed bool
	for _, v := range result.Config.EnvVars {
		if v == "MD2HTML_AUTOR" {
			listed = true
		}
	}
	if !listed {
		t.Errorf("env vars = %v, should list MD2HTML_AUTOR", result.Config.EnvVars)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_KnownEnvVar - Known variables are reported without warning
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_KnownEnvVar(t *testing.T) {
	// No t.Parallel: modifies environment variables.
	t.Setenv("MD2HTML_AUTHOR", "Jane Doe")

	env, stdout, _ := testEnv()
	result, _ := decodeDoctorJSON(t, env, stdout)

	var listed bool
	for _, v := range result.Config.EnvVars {
		if v == "MD2HTML_AUTHOR" {
			listed = true
		}
	}
	if !listed {
		t.Errorf("env vars = %v, should list MD2HTML_AUTHOR", result.Config.EnvVars)
	}

	for _, w := range result.Warnings {
		if strings.Contains(w, "MD2HTML_AUTHOR") {
			t.Errorf("known variable should not be flagged: %q", w)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintDoctorResult - Human rendering of each status
// ---------------------------------------------------------------------------

func TestPrintDoctorResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		result       doctorResult
		wantContains []string
	}{
		{
			name: "ready",
			result: doctorResult{
				Status: "ready",
				Assets: assetsInfo{EmbeddedStyles: []string{"document"}, EditorTemplate: true},
				System: systemInfo{OS: "linux", Arch: "amd64", TempWritable: true},
			},
			wantContains: []string{
				"[OK] Embedded styles: document",
				"[OK] Editor template: loads",
				"[OK] Config file: none (defaults in effect)",
				"Status: Ready to convert",
			},
		},
		{
			name: "warnings",
			result: doctorResult{
				Status:   "warnings",
				Assets:   assetsInfo{EmbeddedStyles: []string{"document"}, EditorTemplate: true},
				System:   systemInfo{OS: "linux", Arch: "amd64", TempWritable: true},
				Warnings: []string{"Unknown environment variable MD2HTML_TYPO (typo?)"},
			},
			wantContains: []string{
				"Warnings:",
				"[WARN] Unknown environment variable MD2HTML_TYPO (typo?)",
				"Status: Ready with warnings",
			},
		},
		{
			name: "errors",
			result: doctorResult{
				Status: "errors",
				Assets: assetsInfo{EmbeddedStyles: []string{"document"}},
				System: systemInfo{OS: "linux", Arch: "amd64"},
				Errors: []string{"Editor template does not load: boom"},
			},
			wantContains: []string{
				"Errors:",
				"[ERROR] Editor template does not load: boom",
				"[ERROR] Temp directory: not writable",
				"Status: Not ready (see errors above)",
			},
		},
		{
			name: "custom asset directory",
			result: doctorResult{
				Status: "ready",
				Assets: assetsInfo{
					EmbeddedStyles: []string{"document"},
					EditorTemplate: true,
					CustomDir:      "/srv/assets",
					CustomDirOK:    true,
				},
				System: systemInfo{OS: "linux", Arch: "amd64", TempWritable: true},
			},
			wantContains: []string{
				"[OK] Custom asset directory: /srv/assets",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf strings.Builder
			printDoctorResult(&buf, &tt.result)

			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q\noutput:\n%s", want, buf.String())
				}
			}
		})
	}
}
