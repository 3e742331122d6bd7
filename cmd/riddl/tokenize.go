package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riddl/internal/compiler"
	"riddl/internal/diagfmt"
	"riddl/internal/logging"
)

var tokenizeCmd = &cobra.Command{
	Use:          "tokenize [flags] file.riddl",
	Short:        "Tokenize a RIDDL source file",
	Long:         `Tokenize prints the token stream the language server works on`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, _, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	svc, closeSvc, err := openService(cmd.Context(), cfg.Compiler)
	if err != nil {
		return err
	}
	defer func() { _ = closeSvc() }()

	tokens, err := compiler.NewAdapter(svc, log).Tokenize(cmd.Context(), string(data), filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, tokens)
	}
	return diagfmt.FormatTokensPretty(out, tokens)
}
