package main

import (
	"github.com/spf13/cobra"

	"riddl/internal/compiler/remote"
	"riddl/internal/riddl"
)

var compileServerCmd = &cobra.Command{
	Use:          "compile-server",
	Short:        "Serve the built-in RIDDL frontend over stdin/stdout",
	Long:         `compile-server answers tokenize and validate requests for language servers running with [compiler] mode = "process"`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return remote.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), riddl.Frontend{})
	},
}
