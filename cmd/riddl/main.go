package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"riddl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "riddl",
	Short: "RIDDL language server and validation tools",
	Long:  `riddl serves editor language intelligence for RIDDL models and validates them from the command line`,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compileServerCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to riddl.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error), overrides riddl.toml")
}

// main executes the root command. A failing command exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
