package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"riddl/internal/diagfmt"
	"riddl/internal/version"
)

const brokenDoc = "domain Shop is {\n  type Sku is String\n  type Sku is UUID\n}"

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "riddl.toml", "[log]\nlevel = \"error\"\n")
	file := writeTemp(t, dir, "shop.riddl", brokenDoc)

	out, err := execute(t, "validate", "--config", cfg, "--color", "off", "--format", "json", "--ui", "off", file)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	var doc diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if doc.Count != 1 || doc.Diagnostics[0].Location.StartLine != 3 {
		t.Fatalf("unexpected output %+v", doc)
	}
	if !strings.Contains(doc.Diagnostics[0].Message, "Type 'Sku' is defined more than once") {
		t.Fatalf("unexpected message %q", doc.Diagnostics[0].Message)
	}
}

func TestValidateCommand_PrettyClean(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "riddl.toml", "[log]\nlevel = \"error\"\n")
	file := writeTemp(t, dir, "ok.riddl", "domain A is {\n  context B is { type Id2 is String }\n}")

	out, err := execute(t, "validate", "--config", cfg, "--color", "off", "--format", "pretty", "--ui", "off", file)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestTokenizeCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "riddl.toml", "[log]\nlevel = \"error\"\n")
	file := writeTemp(t, dir, "a.riddl", "type Sku is String")

	out, err := execute(t, "tokenize", "--config", cfg, "--format", "json", file)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var toks []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(toks) != 4 || toks[1].Text != "Sku" || toks[1].Kind != "Identifier" {
		t.Fatalf("unexpected tokens %+v", toks)
	}
}

func TestParseUIMode(t *testing.T) {
	tests := []struct {
		in   string
		want uiMode
	}{
		{"", uiAuto},
		{"AUTO", uiAuto},
		{" on ", uiOn},
		{"off", uiOff},
	}
	for _, tt := range tests {
		got, err := parseUIMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseUIMode(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseUIMode("sometimes"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestProgressView(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	tests := []struct {
		mode   uiMode
		format string
		want   bool
	}{
		{uiOn, "pretty", true},
		{uiOn, "json", false},
		{uiOff, "pretty", false},
		{uiAuto, "pretty", false},
	}
	for _, tt := range tests {
		if got := tt.mode.progressView(tt.format, f); got != tt.want {
			t.Errorf("mode %d with %s: got %v, want %v", tt.mode, tt.format, got, tt.want)
		}
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, version.Info{Version: "0.1.0"}, versionOptions{showHash: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Tool != "riddl" || payload.GitCommit != "unknown" || strings.Contains(payload.Version, "\x1b") {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.BuildDate != "" {
		t.Fatalf("build date must be omitted without --date")
	}
}
