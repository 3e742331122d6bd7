// Package config loads riddl.toml, the settings file shared by the language
// server and the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// FileName is the configuration file looked up from the working directory
// towards the filesystem root.
const FileName = "riddl.toml"

// Compiler modes.
const (
	ModeBuiltin = "builtin"
	ModeProcess = "process"
)

// Config is the decoded riddl.toml.
type Config struct {
	LSP      LSPConfig      `toml:"lsp"`
	Compiler CompilerConfig `toml:"compiler"`
	Log      LogConfig      `toml:"log"`
}

// LSPConfig tunes the language server.
type LSPConfig struct {
	DebounceMS     int  `toml:"debounce_ms"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Trace          bool `toml:"trace"`
}

// CompilerConfig selects the compiler service.
type CompilerConfig struct {
	Mode    string   `toml:"mode"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		LSP: LSPConfig{
			DebounceMS:     500,
			MaxDiagnostics: 100,
		},
		Compiler: CompilerConfig{
			Mode:    ModeBuiltin,
			Command: "riddl",
			Args:    []string{"compile-server"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Debounce returns the debounce window as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.LSP.DebounceMS) * time.Millisecond
}

// Find walks up from startDir looking for riddl.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads riddl.toml starting at startDir. When no file
// exists the defaults are returned with an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.LSP.DebounceMS <= 0 {
		return fmt.Errorf("[lsp].debounce_ms must be positive, got %d", c.LSP.DebounceMS)
	}
	if c.LSP.MaxDiagnostics < 0 {
		return fmt.Errorf("[lsp].max_diagnostics must not be negative, got %d", c.LSP.MaxDiagnostics)
	}
	switch c.Compiler.Mode {
	case ModeBuiltin:
	case ModeProcess:
		if strings.TrimSpace(c.Compiler.Command) == "" {
			return errors.New("[compiler].command is required in process mode")
		}
	default:
		return fmt.Errorf("[compiler].mode must be %q or %q, got %q", ModeBuiltin, ModeProcess, c.Compiler.Mode)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("[log].format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
