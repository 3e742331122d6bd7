package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"riddl/internal/config"
	"riddl/internal/logging"
	"riddl/internal/lsp"
	"riddl/internal/version"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the RIDDL language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

// stdio joins stdin and stdout into the server's connection.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdio) Close() error {
	return errors.Join(os.Stdin.Close(), os.Stdout.Close())
}

func runLSP(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, level, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	svc, closeSvc, err := openService(ctx, cfg.Compiler)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSvc(); err != nil {
			log.Warn("compiler shutdown failed", zap.Error(err))
		}
	}()

	server := lsp.NewServer(lsp.ServerOptions{
		Service: svc,
		Logger:  log,
		Config:  cfg.LSP,
		Version: version.Plain(),
	})
	if path != "" {
		go watchConfig(ctx, path, log, server, level)
	}

	log.Info("language server starting",
		zap.String("config", path),
		zap.String("compiler", cfg.Compiler.Mode))
	if err := server.Run(ctx, stdio{}); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}

// watchConfig pushes riddl.toml edits into the running server. Compiler
// mode changes need a restart.
func watchConfig(ctx context.Context, path string, log *zap.Logger, server *lsp.Server, level zap.AtomicLevel) {
	err := config.Watch(ctx, path, log, func(cfg config.Config) {
		server.ApplyConfig(cfg.LSP)
		if lvl, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
			level.SetLevel(lvl)
		}
	})
	if err != nil {
		log.Warn("config watch stopped", zap.String("path", path), zap.Error(err))
	}
}
