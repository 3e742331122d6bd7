package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"riddl/internal/compiler"
	"riddl/internal/compiler/remote"
	"riddl/internal/config"
	"riddl/internal/riddl"
)

// errDiagnostics reports that error diagnostics were already printed.
var errDiagnostics = errors.New("validation reported errors")

// loadConfig resolves riddl.toml (from --config or by discovery) and
// applies the global flag overrides. The returned path is empty when no
// file exists.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, "", fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.Discover(".")
	}
	if err != nil {
		return config.Config{}, path, err
	}

	if flags.Changed("max-diagnostics") {
		if cfg.LSP.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return config.Config{}, path, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return config.Config{}, path, fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, path, err
	}
	return cfg, path, nil
}

// useColor evaluates --color for output written to f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(value) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// openService returns the compiler service selected by cfg and a function
// releasing it.
func openService(ctx context.Context, cfg config.CompilerConfig) (compiler.Service, func() error, error) {
	switch cfg.Mode {
	case config.ModeProcess:
		client, err := remote.Start(ctx, cfg.Command, cfg.Args...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start compiler: %w", err)
		}
		return client, client.Close, nil
	default:
		return riddl.Frontend{}, func() error { return nil }, nil
	}
}
