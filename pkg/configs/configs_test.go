package configs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "fsummary.yaml", "app:\n  name: fsummary\n")

	cfg, err := Load(viper.New(), p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "text" || !cfg.Output.Color || cfg.Output.Theme != "dracula" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Watch.Debounce != 300 {
		t.Fatalf("watch.debounce = %d, want 300", cfg.Watch.Debounce)
	}
	n, err := cfg.Load.MaxFileSizeBytes()
	if err != nil || n != 64_000_000 {
		t.Fatalf("MaxFileSizeBytes = %d, %v", n, err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "fsummary.yaml", "output:\n  format: json\n  width: 90\nload:\n  max_file_size: 1KiB\n")
	t.Setenv("FSUMMARY_OUTPUT_WIDTH", "72")

	cfg, err := Load(viper.New(), p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Output.Format)
	}
	if cfg.Output.Width != 72 {
		t.Fatalf("env override not applied, width = %d", cfg.Output.Width)
	}
	if n, _ := cfg.Load.MaxFileSizeBytes(); n != 1024 {
		t.Fatalf("max size = %d, want 1024", n)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"format.yaml":   "output:\n  format: html\n",
		"size.yaml":     "load:\n  max_file_size: lots\n",
		"debounce.yaml": "watch:\n  debounce: -5\n",
	}
	for name, content := range cases {
		p := writeFile(t, dir, name, content)
		if _, err := Load(viper.New(), p); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	cases := map[string]OutputFormat{
		"yml":      FormatYAML,
		"JSON":     FormatJSON,
		"toml":     FormatTOML,
		"":         FormatText,
		"txt":      FormatText,
		"plain":    FormatPlain,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
	}
	for in, want := range cases {
		got, err := ParseOutputFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseOutputFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestGetConfigSection(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	section, err := GetConfigSection(v, "output", true)
	if err != nil {
		t.Fatalf("GetConfigSection: %v", err)
	}
	out, ok := section.(OutputConfig)
	if !ok || out.InsightWidth != 120 {
		t.Fatalf("unexpected section: %#v", section)
	}
	if _, err := GetConfigSection(v, "nope", true); err == nil {
		t.Fatalf("expected error for unknown section")
	}
	if _, err := GetConfigSection(v, "nope", false); err == nil {
		t.Fatalf("expected error for unset key")
	}
}

func TestOutputData_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputData(map[string]int{"width": 80}, FormatJSON, &buf, false); err != nil {
		t.Fatalf("OutputData: %v", err)
	}
	if !strings.Contains(buf.String(), `"width": 80`) {
		t.Fatalf("unexpected json: %s", buf.String())
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "conf", "fsummary.yaml")

	if err := CreateDefaultConfig(p, FormatYAML, false); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}
	if err := CreateDefaultConfig(p, FormatYAML, false); err == nil {
		t.Fatalf("expected error when file exists")
	}
	if err := CreateDefaultConfig(p, FormatYAML, true); err != nil {
		t.Fatalf("force overwrite: %v", err)
	}

	cfg, err := Load(viper.New(), p)
	if err != nil {
		t.Fatalf("reload generated config: %v", err)
	}
	if cfg.Load.MaxFileSize != "64MB" || !cfg.Load.StripBOM {
		t.Fatalf("unexpected load section: %+v", cfg.Load)
	}
	if err := CreateDefaultConfig(filepath.Join(dir, "x.md"), FormatMarkdown, false); err == nil {
		t.Fatalf("markdown is not a config file format")
	}
}

func TestLoadingConfig_MaxFileSizeBytes(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"", 0, true},
		{"0", 0, true},
		{"10MB", 10_000_000, true},
		{" 512KiB ", 512 * 1024, true},
		{"lots", 0, false},
	}
	for _, tt := range tests {
		got, err := LoadingConfig{MaxFileSize: tt.in}.MaxFileSizeBytes()
		if (err == nil) != tt.ok {
			t.Fatalf("MaxFileSizeBytes(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("MaxFileSizeBytes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig_SetsGlobal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fsummary.yaml")
	if err := os.WriteFile(path, []byte("load:\n  max_file_size: 2KB\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		globalConfig, globalViper = nil, nil
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if GetConfig() != cfg || GetViper() == nil {
		t.Fatalf("LoadConfig should record the global config and viper")
	}
	if n, _ := GetConfig().Load.MaxFileSizeBytes(); n != 2000 {
		t.Fatalf("load.max_file_size = %d, want 2000", n)
	}
}
