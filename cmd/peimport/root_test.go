package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/ZacharyZcR/PEImport/internal/cli"
	"github.com/ZacharyZcR/PEImport/internal/config"
	"github.com/ZacharyZcR/PEImport/internal/pe/petest"
	"github.com/ZacharyZcR/PEImport/internal/report"
)

func init() {
	color.NoColor = true
}

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "peimport <path_to_pe_file>" {
			t.Errorf("expected use 'peimport <path_to_pe_file>', got %q", cmd.Use)
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"html", "dangerous", "format", "output", "yes", "min-functions", "max-per-dll", "known-only"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
		for _, name := range []string{"verbose", "config", "catalog"} {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("expected persistent flag %q", name)
			}
		}
		if f := cmd.Flags().Lookup("yes"); f != nil && f.Shorthand != "y" {
			t.Errorf("expected shorthand 'y', got %q", f.Shorthand)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"catalog [dll]": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Use]; ok {
				want[sub.Use] = true
			}
		}
		for use, found := range want {
			if !found {
				t.Errorf("expected %q subcommand", use)
			}
		}
	})
}

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	if setupLogger(true) == nil {
		t.Error("expected non-nil logger")
	}
	if setupLogger(false) == nil {
		t.Error("expected non-nil logger")
	}
}

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir    string
		path   string
		format report.Format
		want   string
	}{
		{".", "/tmp/sample.exe", report.FormatText, "sample.txt"},
		{"", "sample.exe", report.FormatHTML, "sample.html"},
		{"out", "dir/app.dll", report.FormatJSON, filepath.Join("out", "app.json")},
		{".", "noext", report.FormatMarkdown, "noext.md"},
	}

	for _, tt := range tests {
		if got := defaultOutput(tt.dir, tt.path, tt.format); got != tt.want {
			t.Errorf("defaultOutput(%q, %q, %q) = %q, want %q", tt.dir, tt.path, tt.format, got, tt.want)
		}
	}
}

// testEnv writes a fixture PE and an empty config file into a temp dir.
func testEnv(t *testing.T) (dir, exe, cfg string) {
	t.Helper()

	exe = petest.WriteFile(t, "sample.exe", petest.Image{
		Subsystem: 3,
		DLLs: []petest.DLL{
			{Name: "KERNEL32.dll", Functions: []string{"CreateFile", "Xyz123", "VirtualAlloc"}},
			{Name: "mystery.dll", Functions: []string{"DoThing"}},
		},
	})
	dir = t.TempDir()
	cfg = filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfg, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	return dir, exe, cfg
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunAnalyzeText(t *testing.T) {
	t.Parallel()

	dir, exe, cfg := testEnv(t)
	output := filepath.Join(dir, "report.txt")

	stdout, err := execute(t, exe, "-y", "-o", output, "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "报告已保存") {
		t.Errorf("expected saved notice, got:\n%s", stdout)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"kernel32.dll:",
		"    CreateFile : Creates or opens a file",
		"    Xyz123 : no description available",
		"mystery.dll:",
		"    DLL Explanation: no summary available",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, report.DangerMarker) {
		t.Errorf("report must not mark dangerous functions without --dangerous:\n%s", text)
	}
}

func TestRunAnalyzeHTMLDangerous(t *testing.T) {
	t.Parallel()

	dir, exe, cfg := testEnv(t)
	output := filepath.Join(dir, "report.html")

	if _, err := execute(t, exe, "-y", "--html", "--dangerous", "--known-only", "-o", output, "--config", cfg); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	html := string(data)
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("expected HTML document, got:\n%s", html)
	}
	if !strings.Contains(html, `<span class="marker">[DANGEROUS]</span>`) {
		t.Errorf("expected dangerous marker:\n%s", html)
	}
	if strings.Contains(html, "mystery.dll") {
		t.Errorf("--known-only must drop unknown DLLs:\n%s", html)
	}
}

func TestRunAnalyzeConfigFormat(t *testing.T) {
	t.Parallel()

	dir, exe, cfg := testEnv(t)
	if err := os.WriteFile(cfg, []byte("format: json\noutput_dir: "+dir+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, exe, "-y", "--config", cfg); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sample.json"))
	if err != nil {
		t.Fatalf("report not written to output_dir: %v", err)
	}
	if !strings.Contains(string(data), `"name": "kernel32.dll"`) {
		t.Errorf("unexpected JSON report:\n%s", data)
	}
}

func TestHTMLFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config string
		flag   string
		want   string
	}{
		{"html=false over html config", "format: html\n", "--html=false", ".txt"},
		{"html over json config", "format: json\n", "--html", ".html"},
		{"html=false keeps json config", "format: json\n", "--html=false", ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, exe, cfg := testEnv(t)
			if err := os.WriteFile(cfg, []byte(tt.config+"output_dir: "+dir+"\n"), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := execute(t, exe, "-y", tt.flag, "--config", cfg); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, "sample"+tt.want)); err != nil {
				t.Errorf("expected sample%s to be written: %v", tt.want, err)
			}
		})
	}
}

func TestRunAnalyzeErrors(t *testing.T) {
	t.Parallel()

	dir, exe, cfg := testEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"missing file", []string{filepath.Join(dir, "missing.exe"), "-y", "--config", cfg}},
		{"not a PE", []string{cfg, "-y", "--config", cfg}},
		{"bad format", []string{exe, "-y", "--format", "xml", "--config", cfg}},
		{"missing config", []string{exe, "-y", "--config", filepath.Join(dir, "none.yaml")}},
		{"unwritable output", []string{exe, "-y", "-o", filepath.Join(dir, "no", "such", "dir.txt"), "--config", cfg}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCatalogCmd(t *testing.T) {
	t.Parallel()

	_, _, cfg := testEnv(t)

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "catalog", "--config", cfg)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "kernel32.dll") || !strings.Contains(out, "iphlpapi.dll") {
			t.Errorf("expected every DLL listed:\n%s", out)
		}
	})

	t.Run("single dll padded", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "catalog", "iphlpapi.dll", "--min", "40", "--config", cfg)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.HasPrefix(out, "iphlpapi.dll:\n    DLL Explanation: ") {
			t.Errorf("unexpected header:\n%s", out)
		}
		if got := strings.Count(out, "\n    ") - 1; got != 40 {
			t.Errorf("expected 40 function lines, got %d", got)
		}
		if !strings.Contains(out, "placeholder_40 : no description available") {
			t.Errorf("expected padding up to placeholder_40:\n%s", out)
		}
	})

	t.Run("unknown dll", func(t *testing.T) {
		t.Parallel()
		if _, err := execute(t, "catalog", "nosuch.dll", "--config", cfg); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("dangerous list", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "catalog", "--dangerous", "--config", cfg)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "createremotethread") || !strings.Contains(out, "virtualalloc : ") {
			t.Errorf("unexpected dangerous list:\n%s", out)
		}
	})
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "peimport version ") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestAnalysisInteractive(t *testing.T) {
	t.Parallel()

	dir, exe, cfgPath := testEnv(t)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "answered.html")

	var out bytes.Buffer
	a := &analysis{
		path:        exe,
		cfg:         cfg,
		out:         &out,
		logger:      setupLogger(false),
		interactive: true,
		askDanger:   true,
		askFormat:   true,
		prompter:    cli.NewPrompter(strings.NewReader("y\ny\n"+output+"\n"), &out),
	}
	if err := a.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), `<span class="marker">[DANGEROUS]</span>`) {
		t.Errorf("expected dangerous HTML report:\n%s", data)
	}
	for _, q := range []string{"是否标记危险/可疑函数?", "是否保存为HTML?", "输出文件名 [" + filepath.Join(".", "sample.html") + "]"} {
		if !strings.Contains(out.String(), q) {
			t.Errorf("prompt %q not shown:\n%s", q, out.String())
		}
	}
}
