package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"riddl/internal/compiler"
	"riddl/internal/config"
	"riddl/internal/diagfmt"
	"riddl/internal/logging"
	"riddl/internal/observ"
	"riddl/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] file.riddl...",
	Short: "Validate RIDDL source files",
	Long:  `Validate runs the compiler on every file and prints diagnostics at the ranges the language server would show`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	validateCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	validateCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
	validateCmd.Flags().Bool("no-context", false, "do not print source lines under diagnostics")
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseUIMode(uiValue)
	if err != nil {
		return err
	}
	noContext, err := cmd.Flags().GetBool("no-context")
	if err != nil {
		return fmt.Errorf("failed to get no-context flag: %w", err)
	}
	colorOut, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()
	if showTimings {
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	var cfg config.Config
	if err := timer.Track("config", func() (err error) {
		cfg, _, err = loadConfig(cmd)
		return err
	}); err != nil {
		return err
	}
	log, _, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	svc, closeSvc, err := openService(cmd.Context(), cfg.Compiler)
	if err != nil {
		return err
	}
	defer func() { _ = closeSvc() }()

	adapter := compiler.NewAdapter(svc, log)
	opts := pipeline.Options{Jobs: jobs, Logger: log}

	var reports []diagfmt.FileReport
	err = timer.Track("validate", func() (err error) {
		if mode.progressView(format, os.Stdout) {
			reports, err = runValidateWithUI(cmd.Context(), "riddl validate", args, adapter, opts)
		} else {
			reports, err = pipeline.Run(cmd.Context(), adapter, args, opts)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	render := timer.Begin("render")
	switch format {
	case "json":
		if err := diagfmt.JSON(out, reports, diagfmt.JSONOpts{Max: cfg.LSP.MaxDiagnostics}); err != nil {
			return err
		}
	default:
		diagfmt.Pretty(out, reports, diagfmt.PrettyOpts{
			Color:   colorOut,
			Context: !noContext,
			Max:     cfg.LSP.MaxDiagnostics,
		})
	}
	timer.End(render, fmt.Sprintf("%d files", len(reports)))

	if pipeline.HasErrors(reports) {
		// diagnostics are already printed
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errDiagnostics
	}
	return nil
}
