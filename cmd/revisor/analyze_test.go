package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDOCX writes a one-paragraph DOCX package to path.
func writeDOCX(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:rFonts w:ascii="Arial"/><w:sz w:val="24"/></w:rPr><w:t>Title</w:t></w:r></w:p>
</w:body></w:document>`))
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
}

// writeConfig writes a configuration file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "revisor.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewAnalyzeCmd_Flags(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"config", "c", ""},
		{"suffix", "", "_analysis"},
		{"workers", "w", "1"},
		{"inherit-styles", "", "false"},
		{"output-dir", "o", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}

func TestAnalyze_WritesReports(t *testing.T) {
	dir := t.TempDir()
	writeDOCX(t, filepath.Join(dir, "thesis.docx"))
	writeDOCX(t, filepath.Join(dir, "~$thesis.docx"))
	configPath := writeConfig(t, "workers: 2\n")

	stdout, _, err := execute(t, "analyze", "-c", configPath, dir)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	report := filepath.Join(dir, "thesis_analysis.txt")
	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "Alignment: Center - 1 times (100.00%)") {
		t.Errorf("unexpected report:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "~$thesis_analysis.txt")); !os.IsNotExist(err) {
		t.Error("lock file should be skipped")
	}

	want := "Analysis of thesis.docx completed. Results saved to " + report
	if !strings.Contains(stdout, want) {
		t.Errorf("expected notice %q, got %q", want, stdout)
	}
}

func TestAnalyze_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "reports")
	writeDOCX(t, filepath.Join(dir, "thesis.docx"))
	configPath := writeConfig(t, "suffix: _fromfile\n")

	if _, _, err := execute(t, "analyze", "-c", configPath, "--suffix", "_checked", "-o", outDir, dir); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "thesis_checked.txt")); err != nil {
		t.Errorf("expected report in output directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "thesis_fromfile.txt")); !os.IsNotExist(err) {
		t.Error("config file suffix should be overridden by the flag")
	}
}

func TestAnalyze_FailedDocument(t *testing.T) {
	dir := t.TempDir()
	writeDOCX(t, filepath.Join(dir, "good.docx"))
	if err := os.WriteFile(filepath.Join(dir, "bad.docx"), []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	configPath := writeConfig(t, "workers: 1\n")

	_, _, err := execute(t, "analyze", "-c", configPath, dir)
	if !errors.Is(err, errDocumentsFailed) {
		t.Fatalf("expected errDocumentsFailed, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "good_analysis.txt")); err != nil {
		t.Errorf("good document should still be analyzed: %v", err)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	dir := t.TempDir()
	writeDOCX(t, filepath.Join(dir, "thesis.docx"))
	configPath := writeConfig(t, "workers: 1\n")

	tests := []struct {
		name string
		args []string
	}{
		{"missing config file", []string{"analyze", "-c", filepath.Join(dir, "missing.yaml"), dir}},
		{"invalid workers", []string{"analyze", "-c", configPath, "-w", "0", dir}},
		{"no documents", []string{"analyze", "-c", configPath, t.TempDir()}},
		{"missing directory", []string{"analyze", "-c", configPath, filepath.Join(dir, "nope")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
