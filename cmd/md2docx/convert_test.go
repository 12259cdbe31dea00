package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2docx/internal/config"
)

func TestLogLevelResolution(t *testing.T) {
	tests := []struct {
		name     string
		flags    convertFlags
		cfg      config.Config
		expected string
	}{
		{
			name:     "quiet wins over everything",
			flags:    convertFlags{quiet: true, verbose: true},
			cfg:      config.Config{Logging: config.LoggingConfig{Level: "debug"}},
			expected: "error",
		},
		{
			name:     "verbose beats config",
			flags:    convertFlags{verbose: true},
			cfg:      config.Config{Logging: config.LoggingConfig{Level: "warn"}},
			expected: "debug",
		},
		{
			name:     "config level used",
			cfg:      config.Config{Logging: config.LoggingConfig{Level: "warn"}},
			expected: "warn",
		},
		{
			name:     "default is info",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logLevel(&tt.flags, &tt.cfg); got != tt.expected {
				t.Errorf("logLevel() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConverterOptionsRejectsBadConfig(t *testing.T) {
	flags := &convertFlags{}
	cfg := &config.Config{Diagrams: config.DiagramsConfig{Mode: "lenient"}}

	if _, err := converterOptions(flags, cfg); err == nil {
		t.Error("expected error for invalid diagram mode")
	}
}

func TestConverterOptionsFlagOverridesConfigFit(t *testing.T) {
	flags := &convertFlags{imageFit: "nonsense"}
	cfg := &config.Config{Images: config.ImagesConfig{Fit: "box"}}

	// The flag value is validated even when the config value is fine.
	if _, err := converterOptions(flags, cfg); err == nil {
		t.Error("expected error for invalid --image-fit value")
	}
}

func TestRunConvertRejectsNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	err := runConvert(&convertFlags{quiet: true, outputDir: filepath.Join(dir, "out")}, []string{path})
	if err == nil {
		t.Error("expected extension validation error")
	}
}

func TestRunConvertRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := runConvert(&convertFlags{quiet: true}, []string{filepath.Join(dir, "missing.md")})
	if err == nil {
		t.Error("expected missing file error")
	}
}

func TestRunConvertWritesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(input, []byte("# Hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	t.Chdir(dir)

	err := runConvert(&convertFlags{quiet: true, outputDir: outDir}, []string{input})
	if err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "doc.md.docx")); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
